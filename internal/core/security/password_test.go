package security

import "testing"

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher(4)

	digest, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("expected digest, got plaintext")
	}
	if !h.Compare("s3cret", digest) {
		t.Fatalf("Compare rejected the original password")
	}
	if h.Compare("wrong", digest) {
		t.Fatalf("Compare accepted a wrong password")
	}
}

func TestPasswordHasher_OutOfRangeCost(t *testing.T) {
	h := NewPasswordHasher(99)

	digest, err := h.Hash("pass")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !h.Compare("pass", digest) {
		t.Fatalf("Compare rejected the original password")
	}
}
