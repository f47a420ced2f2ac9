package inspect

type Report struct {
	Canonical  string
	Timestamp  uint64
	Time       string
	Randomness string
	Bytes      string
	UUID       string
}
