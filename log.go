package huffman

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffman")

func init() {
	setDefaultLogLevel()
}

// setDefaultLogLevel keeps merge traces quiet unless the caller asks for
// them.  logging.SetBackend resets every module to DEBUG, so callers that
// install their own backend must set the level again afterwards.
func setDefaultLogLevel() {
	logging.SetLevel(logging.WARNING, "huffman")
}
