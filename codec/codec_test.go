package codec

import (
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"

	huffman "github.com/chronos-tachyon/huffbits"
	"github.com/chronos-tachyon/huffbits/bitbuffer"
)

func makeTestCodes() map[string]huffman.Code {
	tree := huffman.Build([]huffman.Entry[string]{
		{"a", 5}, {"b", 9}, {"c", 12}, {"d", 13}, {"e", 16}, {"f", 45},
	})
	return tree.Codes()
}

func TestEncoder_Dump(t *testing.T) {
	e := NewEncoder(makeTestCodes())

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(\"a\") = \"1100\"\n",
		"\tEncode(\"b\") = \"1101\"\n",
		"\tEncode(\"c\") = \"100\"\n",
		"\tEncode(\"d\") = \"101\"\n",
		"\tEncode(\"e\") = \"111\"\n",
		"\tEncode(\"f\") = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestEncoder_Encode(t *testing.T) {
	e := NewEncoder(makeTestCodes())

	dst := bitbuffer.New()
	if err := e.Encode(dst, "f", "a", "c"); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if expect, actual := "01100100", dst.String(); expect != actual {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	err := e.Encode(dst, "b", "z")
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
	if expect, actual := "01100100", dst.String(); expect != actual {
		t.Errorf("failed Encode modified the buffer:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestEncoder_EmptyCode(t *testing.T) {
	e := NewEncoder(map[string]huffman.Code{"a": "", "b": "1"})
	if err := e.Encode(bitbuffer.New(), "a"); !errors.Is(err, ErrEmptyCode) {
		t.Errorf("expected ErrEmptyCode, got %v", err)
	}
}

func TestDecoder_Dump(t *testing.T) {
	d, err := NewDecoder(makeTestCodes())
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tLookup(\"\") = {1, 4}\n",
		"\tLookup(\"0\") = \"f\"\n",
		"\tLookup(\"1\") = {3, 4}\n",
		"\tLookup(\"10\") = {3, 3}\n",
		"\tLookup(\"11\") = {3, 4}\n",
		"\tLookup(\"100\") = \"c\"\n",
		"\tLookup(\"101\") = \"d\"\n",
		"\tLookup(\"110\") = {4, 4}\n",
		"\tLookup(\"111\") = \"e\"\n",
		"\tLookup(\"1100\") = \"a\"\n",
		"\tLookup(\"1101\") = \"b\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestDecoder_Lookup(t *testing.T) {
	d, err := NewDecoder(makeTestCodes())
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}

	type testRow struct {
		code     huffman.Code
		sym      string
		complete bool
		min      int
		max      int
	}

	testData := [...]testRow{
		{code: "", min: 1, max: 4},
		{code: "0", sym: "f", complete: true, min: 1, max: 1},
		{code: "1", min: 3, max: 4},
		{code: "110", min: 4, max: 4},
		{code: "1101", sym: "b", complete: true, min: 4, max: 4},
		{code: "00"},
		{code: "11011"},
	}
	for _, row := range testData {
		t.Run(row.code.String(), func(t *testing.T) {
			sym, complete, min, max := d.Lookup(row.code)
			if sym != row.sym || complete != row.complete {
				t.Errorf("expected symbol %q (complete %v), got %q (complete %v)", row.sym, row.complete, sym, complete)
			}
			if min != row.min {
				t.Errorf("expected minimum size %d, got %d", row.min, min)
			}
			if max != row.max {
				t.Errorf("expected maximum size %d, got %d", row.max, max)
			}
		})
	}
}

func TestDecoder_Errors(t *testing.T) {
	t.Run("NotPrefixFree", func(t *testing.T) {
		_, err := NewDecoder(map[string]huffman.Code{"a": "0", "b": "01", "c": "1"})
		if !errors.Is(err, ErrNotPrefixFree) {
			t.Errorf("expected ErrNotPrefixFree, got %v", err)
		}
	})

	t.Run("InvalidCode", func(t *testing.T) {
		d, err := NewDecoder(map[string]huffman.Code{"a": "0", "b": "10"})
		if err != nil {
			t.Fatalf("NewDecoder failed: %v", err)
		}
		out, err := d.Decode(bitbuffer.FromString("01011"))
		if !errors.Is(err, ErrInvalidCode) {
			t.Errorf("expected ErrInvalidCode, got %v", err)
		}
		if !slices.Equal(out, []string{"a", "b"}) {
			t.Errorf("wrong partial output: %v", out)
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		d, err := NewDecoder(makeTestCodes())
		if err != nil {
			t.Fatalf("NewDecoder failed: %v", err)
		}
		out, err := d.Decode(bitbuffer.FromString("011"))
		if !errors.Is(err, ErrTruncated) {
			t.Errorf("expected ErrTruncated, got %v", err)
		}
		if !slices.Equal(out, []string{"f"}) {
			t.Errorf("wrong partial output: %v", out)
		}
	})

	t.Run("EmptyMapping", func(t *testing.T) {
		d, err := NewDecoder(map[string]huffman.Code(nil))
		if err != nil {
			t.Fatalf("NewDecoder failed: %v", err)
		}
		if out, err := d.Decode(bitbuffer.New()); err != nil || len(out) != 0 {
			t.Errorf("expected no symbols and no error, got %v, %v", out, err)
		}
		if _, err := d.Decode(bitbuffer.FromString("0")); !errors.Is(err, ErrInvalidCode) {
			t.Errorf("expected ErrInvalidCode, got %v", err)
		}
	})
}

func TestRoundTrip_SingleSymbol(t *testing.T) {
	codes := huffman.Build([]huffman.Entry[string]{{"x", 7}}).Codes()
	e := NewEncoder(codes)
	d, err := NewDecoder(codes)
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}

	buf := bitbuffer.New()
	if err := e.Encode(buf, "x", "x", "x"); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if buf.String() != "000" {
		t.Errorf("expected one bit per symbol, got %s", buf)
	}

	out, err := d.Decode(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !slices.Equal(out, []string{"x", "x", "x"}) {
		t.Errorf("wrong output: %v", out)
	}
}

func TestRoundTrip_Serialized(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5a025ca11825a5e7))
	for iter := 0; iter < 20; iter++ {
		input := make([]byte, 1+rng.Intn(500))
		for i := range input {
			// skewed distribution so codes have varied lengths
			input[i] = byte(min(rng.ExpFloat64()*8, 255))
		}

		counts := make(map[byte]uint64)
		for _, ch := range input {
			counts[ch]++
		}
		entries := make([]huffman.Entry[byte], 0, len(counts))
		for ch, n := range counts {
			entries = append(entries, huffman.MakeEntry(ch, n))
		}
		codes := huffman.Build(entries, huffman.WithSelection(huffman.PriorityQueue)).Codes()

		buf := bitbuffer.New()
		if err := NewEncoder(codes).Encode(buf, input...); err != nil {
			t.Fatalf("iteration %d: Encode failed: %v", iter, err)
		}

		wire, err := buf.MarshalBinary()
		if err != nil {
			t.Fatalf("iteration %d: MarshalBinary failed: %v", iter, err)
		}
		parsed, err := bitbuffer.FromBytes(wire)
		if err != nil {
			t.Fatalf("iteration %d: FromBytes failed: %v", iter, err)
		}

		d, err := NewDecoder(codes)
		if err != nil {
			t.Fatalf("iteration %d: NewDecoder failed: %v", iter, err)
		}
		output, err := d.Decode(parsed)
		if err != nil {
			t.Fatalf("iteration %d: Decode failed: %v", iter, err)
		}
		if !slices.Equal(input, output) {
			t.Fatalf("iteration %d: round trip mismatch", iter)
		}
	}
}
