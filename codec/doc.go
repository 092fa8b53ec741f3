// Package codec connects a Huffman code mapping to a bit buffer: Encoder
// appends the code of each symbol to a bitbuffer.Buffer, and Decoder turns
// such a buffer back into symbols.
//
// A mapping with exactly one symbol whose code is empty, as produced by
// huffman.Build for single-symbol input, is treated as if that symbol had
// the one-bit code "0", so every encoded symbol occupies at least one bit.
//
// Decode failures are logged at DEBUG to the go-logging module
// "huffman/codec", which is set to WARNING by default.  Raise it with
// logging.SetLevel(logging.DEBUG, "huffman/codec").
//
package codec
