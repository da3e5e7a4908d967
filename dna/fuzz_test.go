// Copyright 2026, The Nucleo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dna

import (
	"bytes"
	"testing"
)

// FuzzDecode feeds arbitrary streams to the decoder. Streams that decode are
// encoded again and must survive the round trip; everything else is treated
// as text and must round trip as well.
func FuzzDecode(f *testing.F) {
	f.Add(skewed)
	f.Add([]byte{})
	f.Add([]byte("AAAACCGGT"))
	f.Add([]byte(">chr1\nacgtNNACGT\n"))
	f.Fuzz(func(t *testing.T, data []byte) {
		if seq, ok := decodeStream(data); ok {
			testRoundTrip(t, seq)
		} else {
			testRoundTrip(t, data)
		}
	})
}

// decodeStream attempts to decode the stream.
func decodeStream(data []byte) ([]byte, bool) {
	var bb bytes.Buffer
	_, err := Decode(&bb, bytes.NewReader(data))
	return bb.Bytes(), err == nil
}

// testRoundTrip encodes the text and then decodes it, checking that the valid
// bases were losslessly preserved.
func testRoundTrip(t *testing.T, text []byte) {
	want := Filter(nil, text)
	var bb bytes.Buffer
	st, err := Encode(&bb, text)
	if len(want) == 0 {
		if err != ErrEmpty || bb.Len() != 0 {
			t.Fatalf("Encode(%q) = %v with %d bytes, want ErrEmpty with none", text, err, bb.Len())
		}
		return
	}
	if err != nil {
		t.Fatalf("unexpected Encode error: %v", err)
	}
	if st.TotalBytes != int64(bb.Len()) {
		t.Fatalf("mismatching size: got %d, want %d", bb.Len(), st.TotalBytes)
	}

	got, ok := decodeStream(bb.Bytes())
	if !ok || !bytes.Equal(got, want) {
		t.Fatalf("mismatching bases:\ngot  %q\nwant %q", got, want)
	}
}
