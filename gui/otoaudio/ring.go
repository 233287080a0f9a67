// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package otoaudio

import "sync"

// ring is a fixed size byte queue. Write never blocks and Read never returns
// less than the requested amount, padding with zero bytes (silence) when the
// ring is empty. It is safe for concurrent use.
type ring struct {
	mu      sync.Mutex
	data    []byte
	head    int
	used    int
	dropped int
}

func newRing(size int) *ring {
	return &ring{data: make([]byte, size)}
}

// Write adds p to the ring. Bytes that do not fit are dropped. The returned
// count is always len(p).
func (r *ring) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := min(len(p), len(r.data)-r.used)
	r.dropped += len(p) - n

	tail := (r.head + r.used) % len(r.data)
	c := copy(r.data[tail:], p[:n])
	copy(r.data, p[c:n])
	r.used += n

	return len(p), nil
}

// Read implements the io.Reader interface.
func (r *ring) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := min(len(p), r.used)
	c := copy(p[:n], r.data[r.head:])
	copy(p[c:n], r.data)
	r.head = (r.head + n) % len(r.data)
	r.used -= n

	clear(p[n:])

	return len(p), nil
}

// Len returns the number of bytes waiting to be read.
func (r *ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.used
}

// Dropped returns the number of bytes dropped by Write.
func (r *ring) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}
