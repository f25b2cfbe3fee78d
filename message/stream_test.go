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

//nolint:testpackage // Kept in-package for consistency with the other test files.
package message

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestBufferStreamReadWriteSeek(t *testing.T) {
	s := NewBufferStream([]byte("hello"))

	if size, ok := s.Size(); !ok || size != 5 {
		t.Errorf("Size() = (%d, %t), want (5, true)", size, ok)
	}
	if !s.Readable() || !s.Writable() || !s.Seekable() {
		t.Error("BufferStream must be readable, writable and seekable")
	}

	buf := make([]byte, 2)
	if n, err := s.Read(buf); err != nil || n != 2 || string(buf) != "he" {
		t.Fatalf("Read = (%d, %v, %q)", n, err, buf)
	}
	if pos, err := s.Tell(); err != nil || pos != 2 {
		t.Errorf("Tell() = (%d, %v), want (2, nil)", pos, err)
	}
	if s.EOF() {
		t.Error("EOF() = true mid-stream")
	}

	rest, err := s.Contents()
	if err != nil || rest != "llo" {
		t.Fatalf("Contents() = (%q, %v), want (\"llo\", nil)", rest, err)
	}
	if !s.EOF() {
		t.Error("EOF() = false after draining")
	}

	// Rewind and overwrite.
	if pos, err := s.Seek(0, io.SeekStart); err != nil || pos != 0 {
		t.Fatalf("Seek = (%d, %v)", pos, err)
	}
	if s.EOF() {
		t.Error("EOF() = true after Seek")
	}
	if _, err := s.Write([]byte("HELLO world")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	all, err := s.Contents()
	if err != nil || all != "HELLO world" {
		t.Errorf("Contents() = (%q, %v)", all, err)
	}
}

func TestBufferStreamSeekWhence(t *testing.T) {
	s := NewBufferStream([]byte("0123456789"))

	if pos, err := s.Seek(4, io.SeekStart); err != nil || pos != 4 {
		t.Errorf("SeekStart = (%d, %v), want 4", pos, err)
	}
	if pos, err := s.Seek(2, io.SeekCurrent); err != nil || pos != 6 {
		t.Errorf("SeekCurrent = (%d, %v), want 6", pos, err)
	}
	if pos, err := s.Seek(-1, io.SeekEnd); err != nil || pos != 9 {
		t.Errorf("SeekEnd = (%d, %v), want 9", pos, err)
	}
	if _, err := s.Seek(-1, io.SeekStart); err == nil {
		t.Error("Seek to a negative position: expected error")
	}
	if _, err := s.Seek(0, 42); err == nil {
		t.Error("Seek with invalid whence: expected error")
	}
}

func TestBufferStreamClosed(t *testing.T) {
	s := NewBufferStream([]byte("x"))
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	if _, err := s.Read(make([]byte, 1)); !errors.Is(err, ErrStreamClosed) {
		t.Errorf("Read after Close = %v, want ErrStreamClosed", err)
	}
	if _, err := s.Write([]byte("y")); !errors.Is(err, ErrStreamClosed) {
		t.Errorf("Write after Close = %v, want ErrStreamClosed", err)
	}
	if _, err := s.Seek(0, io.SeekStart); !errors.Is(err, ErrStreamClosed) {
		t.Errorf("Seek after Close = %v, want ErrStreamClosed", err)
	}
	if _, err := s.Contents(); !errors.Is(err, ErrStreamClosed) {
		t.Errorf("Contents after Close = %v, want ErrStreamClosed", err)
	}
	if s.Readable() || s.Writable() || s.Seekable() {
		t.Error("capabilities must be false after Close")
	}
}

func TestReaderStream(t *testing.T) {
	s := NewReaderStream(strings.NewReader("stream data"))

	if s.Writable() || s.Seekable() {
		t.Error("ReaderStream must be read-only and non-seekable")
	}
	if _, ok := s.Size(); ok {
		t.Error("Size() known for a plain reader, want unknown")
	}

	if _, err := s.Write([]byte("x")); !errors.Is(err, ErrStreamDetached) {
		t.Errorf("Write = %v, want ErrStreamDetached", err)
	}
	if _, err := s.Seek(0, io.SeekStart); !errors.Is(err, ErrStreamDetached) {
		t.Errorf("Seek = %v, want ErrStreamDetached", err)
	}

	buf := make([]byte, 6)
	if n, err := s.Read(buf); err != nil || n != 6 {
		t.Fatalf("Read = (%d, %v)", n, err)
	}
	if pos, err := s.Tell(); err != nil || pos != 6 {
		t.Errorf("Tell() = (%d, %v), want 6", pos, err)
	}

	rest, err := s.Contents()
	if err != nil || rest != " data" {
		t.Fatalf("Contents() = (%q, %v)", rest, err)
	}
	if !s.EOF() {
		t.Error("EOF() = false after draining")
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := s.Read(buf); !errors.Is(err, ErrStreamClosed) {
		t.Errorf("Read after Close = %v, want ErrStreamClosed", err)
	}
}
