package value

import "testing"

func TestCountingGeneratorCallsFnLazilyOncePerElement(t *testing.T) {
	calls := 0
	gen := NewCountingGenerator(5, func(i int64) (Value, error) {
		calls++
		return Num(Int(i)), nil
	})
	seq := NewSequence(gen)

	for i := 0; i < 3; i++ {
		if _, err := seq.Next(); err != nil {
			t.Fatalf("Next() #%d: unexpected error: %v", i, err)
		}
	}
	if calls != 3 {
		t.Fatalf("fn called %d times after 3 Next() calls, want 3 (laziness violated)", calls)
	}

	for i := 0; i < 2; i++ {
		if _, err := seq.Next(); err != nil {
			t.Fatalf("Next(): unexpected error: %v", err)
		}
	}
	if calls != 5 {
		t.Fatalf("fn called %d times after exhausting all 5, want 5", calls)
	}
	if _, err := seq.Next(); err != ErrSequenceExhausted {
		t.Fatalf("Next() past the end = %v, want ErrSequenceExhausted", err)
	}
	if calls != 5 {
		t.Fatalf("fn called again past exhaustion: %d calls, want 5", calls)
	}
}

func TestMapTransformerAppliesInRegistrationOrder(t *testing.T) {
	gen := NewCountingGenerator(3, func(i int64) (Value, error) { return Num(Int(i)), nil })
	seq := NewSequence(gen)
	seq = seq.WithTransformer(Transformer{Kind: MapTransformer, Fn: func(v Value) (Value, error) {
		n := v.(NumberValue).N
		return Num(Int(n.I + 1)), nil
	}})
	seq = seq.WithTransformer(Transformer{Kind: MapTransformer, Fn: func(v Value) (Value, error) {
		n := v.(NumberValue).N
		return Num(Int(n.I * 10)), nil
	}})

	want := []int64{10, 20, 30}
	for i, w := range want {
		v, err := seq.Next()
		if err != nil {
			t.Fatalf("Next() #%d: unexpected error: %v", i, err)
		}
		got := v.(NumberValue).N.I
		if got != w {
			t.Fatalf("Next() #%d = %d, want %d", i, got, w)
		}
	}
}

func TestFilterTransformerSkipsRejectedElementsAndCallsPredicateOnce(t *testing.T) {
	gen := NewCountingGenerator(6, func(i int64) (Value, error) { return Num(Int(i)), nil })
	seq := NewSequence(gen)
	predicateCalls := 0
	seq = seq.WithTransformer(Transformer{Kind: FilterTransformer, Fn: func(v Value) (Value, error) {
		predicateCalls++
		n := v.(NumberValue).N
		return Bool(n.I%2 == 0), nil
	}})

	var got []int64
	for {
		v, err := seq.Next()
		if err == ErrSequenceExhausted {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, v.(NumberValue).N.I)
	}
	want := []int64{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if predicateCalls != 6 {
		t.Fatalf("predicate called %d times, want exactly 6 (once per source element)", predicateCalls)
	}
}

func TestSequenceIsSinglePass(t *testing.T) {
	gen := NewCountingGenerator(1, func(i int64) (Value, error) { return Num(Int(i)), nil })
	seq := NewSequence(gen)
	if _, err := seq.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !seq.AtEnd() {
		t.Fatal("sequence should report AtEnd after its one element is consumed")
	}
	if _, err := seq.Next(); err != ErrSequenceExhausted {
		t.Fatalf("Next() after exhaustion = %v, want ErrSequenceExhausted", err)
	}
}

func TestVectorGeneratorPreservesOrder(t *testing.T) {
	elems := []Value{Num(Int(1)), Num(Int(2)), Num(Int(3))}
	seq := NewSequence(NewVectorGenerator(elems))
	for i, want := range elems {
		v, err := seq.Next()
		if err != nil {
			t.Fatalf("Next() #%d: unexpected error: %v", i, err)
		}
		if !Equal(v, want) {
			t.Fatalf("Next() #%d = %v, want %v", i, v, want)
		}
	}
	if _, err := seq.Next(); err != ErrSequenceExhausted {
		t.Fatalf("Next() past the end = %v, want ErrSequenceExhausted", err)
	}
}

func TestZipGeneratorStopsAtShorterSequence(t *testing.T) {
	a := NewSequence(NewVectorGenerator([]Value{Num(Int(1)), Num(Int(2)), Num(Int(3))}))
	b := NewSequence(NewVectorGenerator([]Value{Num(Int(10)), Num(Int(20))}))
	zip := NewSequence(NewZipGenerator(a, b))

	v, err := zip.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pair := v.(VectorValue).V.Elems
	if pair[0].(NumberValue).N.I != 1 || pair[1].(NumberValue).N.I != 10 {
		t.Fatalf("first pair = %v, want [1, 10]", v)
	}

	if _, err := zip.Next(); err != nil {
		t.Fatalf("unexpected error on second pair: %v", err)
	}

	if !zip.AtEnd() {
		t.Fatal("zip should be AtEnd once the shorter source is exhausted")
	}
}
