package codec

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffman/codec")

func init() {
	setDefaultLogLevel()
}

func setDefaultLogLevel() {
	logging.SetLevel(logging.WARNING, "huffman/codec")
}
