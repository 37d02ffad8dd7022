package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateMatchesCheckedInFile(t *testing.T) {
	data, err := os.ReadFile("../../pkg/proptag/tags.yaml")
	if err != nil {
		t.Fatalf("reading catalog: %v", err)
	}
	want, err := os.ReadFile("../../pkg/proptag/tags_gen.go")
	if err != nil {
		t.Fatalf("reading tags_gen.go: %v", err)
	}

	code, err := Generate(data, "tags.yaml")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	got, err := format("tags_gen.go", code)
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if string(got) != string(want) {
		t.Error("tags_gen.go is stale; rerun mapi-taggen")
	}
}

func TestGenerateSmallCatalog(t *testing.T) {
	yaml := `version: 1
tags:
  - name: PR_SUBJECT_W
    go: TagSubjectW
    id: 0x0037
    type: PT_UNICODE
    description: Message subject
  - name: PR_IMPORTANCE
    go: TagImportance
    id: 0x0017
    type: PT_LONG
    description: Sender-assigned importance
`
	code, err := Generate([]byte(yaml), "small.yaml")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := `// Code generated by mapi-taggen from small.yaml. DO NOT EDIT.

package proptag

// Well-known property tags.
const (
	// TagImportance is PR_IMPORTANCE: Sender-assigned importance.
	TagImportance PropTag = 0x00170003

	// TagSubjectW is PR_SUBJECT_W: Message subject.
	TagSubjectW PropTag = 0x0037001F
)
`
	if code != want {
		t.Errorf("Generate() =\n%s\nwant\n%s", code, want)
	}
}

func TestGenerateRejects(t *testing.T) {
	tests := []struct {
		name string
		tags string
		want string
	}{
		{
			"unexported go name",
			"  - {name: PR_A, go: tagA, id: 0x0001, type: PT_LONG, description: a}\n",
			"not an exported identifier",
		},
		{
			"duplicate go name",
			"  - {name: PR_A, go: TagA, id: 0x0001, type: PT_LONG, description: a}\n" +
				"  - {name: PR_B, go: TagA, id: 0x0002, type: PT_LONG, description: b}\n",
			"already used",
		},
		{
			"missing description",
			"  - {name: PR_A, go: TagA, id: 0x0001, type: PT_LONG}\n",
			"missing description",
		},
		{
			"invalid type",
			"  - {name: PR_A, go: TagA, id: 0x0001, type: PT_NOPE, description: a}\n",
			"PT_NOPE",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate([]byte("version: 1\ntags:\n"+tt.tags), "bad.yaml")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Generate() err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestRunWritesBrokenFileOnFormatError(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.go")
	if err := writeFormatted(out, "package proptag\nconst ("); err == nil {
		t.Fatal("expected format error")
	}
	if _, err := os.Stat(out + ".broken"); err != nil {
		t.Errorf("broken file not written: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output should not exist, stat err = %v", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "tags.yaml")
	out := filepath.Join(dir, "tags_gen.go")
	yaml := "version: 1\ntags:\n  - {name: PR_A, go: TagA, id: 0x0E08, type: PT_LONG, description: Size}\n"
	if err := os.WriteFile(in, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run(in, out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "TagA PropTag = 0x0E080003") {
		t.Errorf("generated file = %s", data)
	}
}
