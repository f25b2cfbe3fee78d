/*
Copyright 2026 The httpfoundation Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package message

import (
	"io"

	"github.com/pkg/errors"
)

// ErrStreamClosed is returned by every operation on a closed stream.
var ErrStreamClosed = errors.New("stream is closed")

// ErrStreamDetached is wrapped by operations that the underlying sink does
// not support, such as seeking a plain reader or writing a read-only stream.
var ErrStreamDetached = errors.New("operation not supported by this stream")

// Stream is a message body: read/write/seek access to a byte sink with EOF
// and capability metadata. Implementations report the capabilities they lack
// through Readable/Writable/Seekable and return an error wrapping
// ErrStreamDetached from the corresponding operations.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	// Size returns the total number of bytes in the stream, when known.
	Size() (int64, bool)
	// Tell returns the current read/write position.
	Tell() (int64, error)
	// EOF reports whether the last Read hit the end of the stream.
	EOF() bool

	Readable() bool
	Writable() bool
	Seekable() bool

	// Contents reads and returns everything from the current position to the
	// end of the stream.
	Contents() (string, error)
}

// BufferStream is a growable in-memory Stream. It is readable, writable and
// seekable. The zero value is an empty stream ready for use.
type BufferStream struct {
	buf    []byte
	pos    int64
	eof    bool
	closed bool
}

// NewBufferStream returns an in-memory stream initialized with data, with the
// position at the start. The data slice is copied, so later changes to it do
// not affect the stream.
func NewBufferStream(data []byte) *BufferStream {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &BufferStream{buf: buf}
}

// Read copies bytes from the current position, advancing it. At the end of
// the buffer it returns io.EOF and marks the stream as drained.
func (s *BufferStream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, errors.Wrap(ErrStreamClosed, "read")
	}
	if s.pos >= int64(len(s.buf)) {
		s.eof = true
		return 0, io.EOF
	}
	n := copy(p, s.buf[s.pos:])
	s.pos += int64(n)
	if s.pos >= int64(len(s.buf)) {
		s.eof = true
	}
	return n, nil
}

// Write copies p at the current position, growing the buffer as needed, and
// advances the position past the written bytes.
func (s *BufferStream) Write(p []byte) (int, error) {
	if s.closed {
		return 0, errors.Wrap(ErrStreamClosed, "write")
	}
	if need := s.pos + int64(len(p)); need > int64(len(s.buf)) {
		grown := make([]byte, need)
		copy(grown, s.buf)
		s.buf = grown
	}
	n := copy(s.buf[s.pos:], p)
	s.pos += int64(n)
	s.eof = false
	return n, nil
}

// Seek moves the position per io.Seeker semantics and clears the EOF flag.
// Seeking before the start of the buffer is an error; seeking past the end is
// allowed and a later Write fills the gap with zero bytes.
func (s *BufferStream) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return 0, errors.Wrap(ErrStreamClosed, "seek")
	}
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = s.pos + offset
	case io.SeekEnd:
		abs = int64(len(s.buf)) + offset
	default:
		return 0, errors.Errorf("seek: invalid whence %d", whence)
	}
	if abs < 0 {
		return 0, errors.New("seek: negative position")
	}
	s.pos = abs
	s.eof = false
	return abs, nil
}

// Close marks the stream closed. Further operations fail with
// ErrStreamClosed. Closing twice is a no-op.
func (s *BufferStream) Close() error {
	s.closed = true
	return nil
}

// Size returns the buffer length. It is always known.
func (s *BufferStream) Size() (int64, bool) {
	if s.closed {
		return 0, false
	}
	return int64(len(s.buf)), true
}

// Tell returns the current position.
func (s *BufferStream) Tell() (int64, error) {
	if s.closed {
		return 0, errors.Wrap(ErrStreamClosed, "tell")
	}
	return s.pos, nil
}

// EOF reports whether the last Read reached the end of the buffer.
func (s *BufferStream) EOF() bool {
	return s.eof
}

// Readable reports true until the stream is closed.
func (s *BufferStream) Readable() bool { return !s.closed }

// Writable reports true until the stream is closed.
func (s *BufferStream) Writable() bool { return !s.closed }

// Seekable reports true until the stream is closed.
func (s *BufferStream) Seekable() bool { return !s.closed }

// Contents returns everything from the current position to the end of the
// buffer and moves the position to the end.
func (s *BufferStream) Contents() (string, error) {
	if s.closed {
		return "", errors.Wrap(ErrStreamClosed, "contents")
	}
	if s.pos >= int64(len(s.buf)) {
		s.eof = true
		return "", nil
	}
	out := string(s.buf[s.pos:])
	s.pos = int64(len(s.buf))
	s.eof = true
	return out, nil
}

// ReaderStream wraps an arbitrary io.Reader as a read-only, non-seekable
// Stream with unknown size. If the reader also implements io.Closer, Close is
// forwarded to it.
type ReaderStream struct {
	r      io.Reader
	pos    int64
	eof    bool
	closed bool
}

// NewReaderStream returns a Stream reading from r.
func NewReaderStream(r io.Reader) *ReaderStream {
	return &ReaderStream{r: r}
}

// Read forwards to the wrapped reader and tracks position and EOF.
func (s *ReaderStream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, errors.Wrap(ErrStreamClosed, "read")
	}
	n, err := s.r.Read(p)
	s.pos += int64(n)
	if err == io.EOF {
		s.eof = true
	}
	return n, err
}

// Write always fails: the stream is read-only.
func (s *ReaderStream) Write([]byte) (int, error) {
	return 0, errors.Wrap(ErrStreamDetached, "write to read-only stream")
}

// Seek always fails: a plain reader cannot rewind.
func (s *ReaderStream) Seek(int64, int) (int64, error) {
	return 0, errors.Wrap(ErrStreamDetached, "seek on non-seekable stream")
}

// Close closes the wrapped reader when it implements io.Closer.
func (s *ReaderStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if c, ok := s.r.(io.Closer); ok {
		return errors.Wrap(c.Close(), "close wrapped reader")
	}
	return nil
}

// Size is unknown for a plain reader.
func (s *ReaderStream) Size() (int64, bool) {
	return 0, false
}

// Tell returns the number of bytes read so far.
func (s *ReaderStream) Tell() (int64, error) {
	if s.closed {
		return 0, errors.Wrap(ErrStreamClosed, "tell")
	}
	return s.pos, nil
}

// EOF reports whether the wrapped reader has been drained.
func (s *ReaderStream) EOF() bool {
	return s.eof
}

// Readable reports true until the stream is closed.
func (s *ReaderStream) Readable() bool { return !s.closed }

// Writable always reports false.
func (s *ReaderStream) Writable() bool { return false }

// Seekable always reports false.
func (s *ReaderStream) Seekable() bool { return false }

// Contents drains the wrapped reader from the current position.
func (s *ReaderStream) Contents() (string, error) {
	if s.closed {
		return "", errors.Wrap(ErrStreamClosed, "contents")
	}
	data, err := io.ReadAll(s.r)
	s.pos += int64(len(data))
	s.eof = true
	if err != nil {
		return "", errors.Wrap(err, "drain stream")
	}
	return string(data), nil
}
