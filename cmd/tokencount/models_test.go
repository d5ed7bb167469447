package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestModelsCommand_ListsAllModels(t *testing.T) {
	root := NewRootCmd()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"models"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, want := range []string{"gpt-4o", "gpt-3.5-turbo", "text-davinci-003", "o200k_base", "r50k_base"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("models output missing %q:\n%s", want, out.String())
		}
	}
}

func TestEncodingsCommand_ListsAllEncodings(t *testing.T) {
	root := NewRootCmd()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"encodings"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got := strings.Fields(out.String())
	want := []string{"o200k_base", "cl100k_base", "p50k_base", "r50k_base"}

	if len(got) != len(want) {
		t.Fatalf("encodings output = %v; want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("encodings output = %v; want %v", got, want)
		}
	}
}
