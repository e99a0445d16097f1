package booking

import "crypto/rand"

// Order numbers look like "FW-7G2K4". The alphabet drops 0/O/1/I so the
// number survives being read over the phone.
const orderAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

func newOrderNumber() string {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	out := make([]byte, 0, 8)
	out = append(out, 'F', 'W', '-')
	for _, b := range buf {
		out = append(out, orderAlphabet[int(b)%len(orderAlphabet)])
	}
	return string(out)
}
