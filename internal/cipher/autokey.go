package cipher

// DecryptAutokey decrypts ct into pt with a running key: the primer
// fills the first positions of the keystream and each recovered
// plaintext letter is appended after it, so the keystream never
// restarts. keystream must have capacity for len(primer)+len(ct)
// letters; pass nil to allocate.
func (tb *Tableau) DecryptAutokey(primer, ct, pt, keystream []byte) {
	l := len(primer)
	if keystream == nil {
		keystream = make([]byte, l+len(ct))
	}
	keystream = keystream[:l+len(ct)]
	copy(keystream, primer)
	for i, c := range ct {
		m := tb.DecryptChar(c, keystream[i])
		pt[i] = m
		keystream[l+i] = m
	}
}

// EncryptAutokey encrypts pt into ct with a running key of the primer
// followed by the plaintext itself.
func (tb *Tableau) EncryptAutokey(primer, pt, ct, keystream []byte) {
	l := len(primer)
	if keystream == nil {
		keystream = make([]byte, l+len(pt))
	}
	keystream = keystream[:l+len(pt)]
	copy(keystream, primer)
	copy(keystream[l:], pt)
	for i, m := range pt {
		ct[i] = tb.EncryptChar(m, keystream[i])
	}
}
