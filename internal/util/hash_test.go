package util

import "testing"

func TestDocumentID(t *testing.T) {
	a := DocumentID("Some text.")
	if len(a) != 16 {
		t.Errorf("len(DocumentID) = %d, want 16", len(a))
	}
	if a != DocumentID("Some text.") {
		t.Error("DocumentID is not stable")
	}
	if a == DocumentID("Other text.") {
		t.Error("different texts share an ID")
	}
}
