package huffman

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = MaxWeight
	}
	return sum
}
