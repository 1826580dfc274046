package storage_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/damedic/rdf-toolbox-go/storage"
	"github.com/google/go-cmp/cmp"
)

const (
	xsdInteger = "http://www.w3.org/2001/XMLSchema#integer"
	xsdString  = "http://www.w3.org/2001/XMLSchema#string"
	langString = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
)

func TestMemoryDeduplicates(t *testing.T) {
	m := storage.NewMemory()
	views := []storage.LiteralView{
		{Datatype: xsdString, Lexical: "chat"},
		{Datatype: langString, Lexical: "chat", Lang: "fr"},
		{Datatype: langString, Lexical: "chat", Lang: "en"},
		{Datatype: xsdString, Lexical: "chat"},
	}
	var ids []storage.NodeID
	for _, v := range views {
		id, err := m.FindOrMakeID(v)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	if diff := cmp.Diff([]storage.NodeID{1, 2, 3, 1}, ids); diff != "" {
		t.Errorf("FindOrMakeID() mismatch (-want +got):\n%s", diff)
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}

	got, err := m.LiteralBackend(2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(views[1], got); diff != "" {
		t.Errorf("LiteralBackend() mismatch (-want +got):\n%s", diff)
	}
	if _, err := m.LiteralBackend(4); !errors.Is(err, storage.ErrNodeNotFound) {
		t.Errorf("LiteralBackend(4) error = %v, want %v", err, storage.ErrNodeNotFound)
	}
	if _, err := m.LiteralBackend(0); !errors.Is(err, storage.ErrNodeNotFound) {
		t.Errorf("LiteralBackend(0) error = %v, want %v", err, storage.ErrNodeNotFound)
	}
}

func TestMemoryFindID(t *testing.T) {
	m := storage.NewMemory()
	v := storage.LiteralView{Datatype: xsdString, Lexical: "x"}
	if _, ok, _ := m.FindID(v); ok {
		t.Fatal("FindID() found a literal before it was stored")
	}
	want, _ := m.FindOrMakeID(v)
	if got, ok, err := m.FindID(v); !ok || err != nil || got != want {
		t.Errorf("FindID() = %v, %v, %v, want %v", got, ok, err, want)
	}
	if m.Len() != 1 {
		t.Errorf("FindID() stored a literal")
	}
}

func TestMemoryBoxed(t *testing.T) {
	tests := []struct {
		name      string
		opts      []storage.MemoryOption
		datatype  string
		wantBoxed bool
	}{
		{"default integer", nil, xsdInteger, true},
		{"default string", nil, xsdString, false},
		{"configured string", []storage.MemoryOption{storage.WithSpecialized(xsdString)}, xsdString, true},
		{"configured integer", []storage.MemoryOption{storage.WithSpecialized(xsdString)}, xsdInteger, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := storage.NewMemory(tt.opts...)
			if got := m.HasSpecializedStorageFor(tt.datatype); got != tt.wantBoxed {
				t.Errorf("HasSpecializedStorageFor() = %v, want %v", got, tt.wantBoxed)
			}
			id, err := m.FindOrMakeID(storage.LiteralView{Datatype: tt.datatype, Lexical: "42", Boxed: 42})
			if err != nil {
				t.Fatal(err)
			}
			v, err := m.LiteralBackend(id)
			if err != nil {
				t.Fatal(err)
			}
			if (v.Boxed != nil) != tt.wantBoxed {
				t.Errorf("Boxed = %v, want boxed %v", v.Boxed, tt.wantBoxed)
			}
			if v.Lexical != "42" {
				t.Errorf("Lexical = %q, want 42", v.Lexical)
			}
		})
	}
}

func TestMemoryConcurrent(t *testing.T) {
	m := storage.NewMemory()
	var wg sync.WaitGroup
	ids := make([]storage.NodeID, 16)
	for i := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := m.FindOrMakeID(storage.LiteralView{Datatype: xsdString, Lexical: "shared"})
			if err != nil {
				t.Error(err)
			}
			ids[i] = id
		}()
	}
	wg.Wait()
	for _, id := range ids {
		if id != ids[0] {
			t.Fatalf("concurrent interning returned %v and %v", ids[0], id)
		}
	}
}

func TestKeyOf(t *testing.T) {
	a := storage.KeyOf(storage.LiteralView{Datatype: xsdString, Lexical: "ab"})
	b := storage.KeyOf(storage.LiteralView{Datatype: xsdString, Lexical: "ab", Boxed: "ignored"})
	c := storage.KeyOf(storage.LiteralView{Datatype: langString, Lexical: "ab", Lang: "en"})
	d := storage.KeyOf(storage.LiteralView{Datatype: langString, Lexical: "ab", Lang: "de"})
	if a != b {
		t.Error("boxed value changed the key")
	}
	if c == d || a == c {
		t.Error("distinct literals share a key")
	}
}

func TestDefault(t *testing.T) {
	previous := storage.Default()
	t.Cleanup(func() { storage.SetDefault(previous) })

	if storage.Default() != previous {
		t.Error("Default() is not stable")
	}
	m := storage.NewMemory()
	storage.SetDefault(m)
	if storage.Default() != storage.Storage(m) {
		t.Error("SetDefault() not applied")
	}
}
