package util

import (
	"bytes"
	"math"
	"testing"
)

func TestPrettyPrint(t *testing.T) {
	var out bytes.Buffer

	err := PrettyPrint(&out, map[string]interface{}{"space": 1, "success": true})
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n    \"space\": 1,\n    \"success\": true\n}\n"
	if got := out.String(); got != want {
		t.Fatalf("Expected %q, got %q", want, got)
	}
}

func TestPrettyPrintFailureWritesNothing(t *testing.T) {
	var out bytes.Buffer

	if err := PrettyPrint(&out, math.Inf(1)); err == nil {
		t.Fatal("Expected error serializing +Inf")
	}
	if out.Len() != 0 {
		t.Fatalf("Expected nothing written, got %q", out.String())
	}
}
