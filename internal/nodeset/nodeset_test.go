package nodeset

import "testing"

type fakeNode struct{ id uint32 }

func (f fakeNode) NodeID() uint32 { return f.id }

func TestInsertOrdersById(t *testing.T) {
	s := New[fakeNode]()
	s.Insert(fakeNode{5})
	s.Insert(fakeNode{1})
	s.Insert(fakeNode{3})

	got := s.Values()
	want := []uint32{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].NodeID() != w {
			t.Errorf("Values()[%d].NodeID() = %d, want %d", i, got[i].NodeID(), w)
		}
	}
}

func TestInsertDedupsById(t *testing.T) {
	s := New[fakeNode]()
	s.Insert(fakeNode{2})
	s.Insert(fakeNode{2})
	s.Insert(fakeNode{2})

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestContains(t *testing.T) {
	s := New[fakeNode]()
	s.Insert(fakeNode{10})
	s.Insert(fakeNode{20})

	if !s.Contains(10) || !s.Contains(20) {
		t.Error("Contains should report true for inserted ids")
	}
	if s.Contains(15) {
		t.Error("Contains should report false for an absent id")
	}
}

func TestMax(t *testing.T) {
	s := New[fakeNode]()
	if _, ok := s.Max(); ok {
		t.Fatal("Max() on empty set should report ok=false")
	}
	s.Insert(fakeNode{3})
	s.Insert(fakeNode{7})
	s.Insert(fakeNode{5})

	max, ok := s.Max()
	if !ok || max.NodeID() != 7 {
		t.Errorf("Max() = (%v, %v), want (7, true)", max.NodeID(), ok)
	}
}

func TestInsertBeforeHead(t *testing.T) {
	s := New[fakeNode]()
	s.Insert(fakeNode{10})
	s.Insert(fakeNode{1})

	got := s.Values()
	if len(got) != 2 || got[0].NodeID() != 1 || got[1].NodeID() != 10 {
		t.Errorf("Values() = %v, want [1 10]", got)
	}
}

func TestEachVisitsAscending(t *testing.T) {
	s := New[fakeNode]()
	for _, id := range []uint32{9, 2, 6, 1} {
		s.Insert(fakeNode{id})
	}

	var seen []uint32
	s.Each(func(f fakeNode) { seen = append(seen, f.id) })

	want := []uint32{1, 2, 6, 9}
	for i, w := range want {
		if seen[i] != w {
			t.Errorf("Each order[%d] = %d, want %d", i, seen[i], w)
		}
	}
}
