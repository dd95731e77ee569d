package diag

import (
	"errors"
	"testing"
)

func TestSinkCountsAndEmits(t *testing.T) {
	var out Collector
	sink := NewSink(Overrides{Ignore: ParseIDList("E002")}, &out)

	sink.Report("a.sh", NewFinding(TrailingWhitespace, 4, "if "))
	sink.Report("a.sh", NewFinding(TabIndent, 5, "\techo"))
	sink.Report("a.sh", NewFinding(LineTooLong, 6, "long"))
	sink.Report("b.sh", NewFinding(DoNotOnSameLine, 1, "while true", "while"))

	if sink.Errors() != 2 {
		t.Errorf("errors = %d, want 2", sink.Errors())
	}
	if sink.Warnings() != 1 {
		t.Errorf("warnings = %d, want 1", sink.Warnings())
	}
	if len(out.Items) != 3 {
		t.Fatalf("emitted %d diagnostics, want 3", len(out.Items))
	}
	want := "error E001 a.sh:4 Trailing Whitespace\n" +
		"warning E006 a.sh:6 Line too long\n" +
		"error E010 b.sh:1 The \"do\" should be on same line as while"
	if got := shortLines(out.Items); got != want {
		t.Errorf("unexpected output:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}

func TestSinkIgnoredNeverCounted(t *testing.T) {
	var out Collector
	sink := NewSink(Overrides{Ignore: ParseIDList("E001|E011"), Error: ParseIDList("E001")}, &out)
	sink.Report("x", NewFinding(TrailingWhitespace, 1, "if "))
	sink.Report("x", NewFinding(ThenNotOnSameLine, 1, "if "))
	if sink.Errors() != 0 || sink.Warnings() != 0 || len(out.Items) != 0 {
		t.Fatalf("ignored findings leaked: errors=%d warnings=%d out=%v", sink.Errors(), sink.Warnings(), out.Items)
	}
}

type failingEmitter struct{ calls int }

func (f *failingEmitter) Emit(Diagnostic) error {
	f.calls++
	return errors.New("broken pipe")
}

func TestSinkKeepsFirstEmitError(t *testing.T) {
	em := &failingEmitter{}
	sink := NewSink(Overrides{}, em)
	sink.Report("x", NewFinding(TrailingWhitespace, 1, ""))
	sink.Report("x", NewFinding(TrailingWhitespace, 2, ""))
	if sink.Err() == nil {
		t.Fatal("expected emitter error")
	}
	if em.calls != 1 {
		t.Errorf("emitter called %d times after failure, want 1", em.calls)
	}
	if sink.Errors() != 2 {
		t.Errorf("counters must keep running, errors = %d", sink.Errors())
	}
}

func TestBagReplayPreservesOrder(t *testing.T) {
	bag := NewBag("f.sh")
	bag.Report("ignored-name", NewFinding(TabIndent, 3, ""))
	bag.Report("ignored-name", NewFinding(TrailingWhitespace, 1, ""))

	var got []string
	bag.Replay(reporterFunc(func(file string, f Finding) {
		got = append(got, file+":"+f.Code.ID())
	}))
	if len(got) != 2 || got[0] != "f.sh:E002" || got[1] != "f.sh:E001" {
		t.Fatalf("unexpected replay %v", got)
	}
}

func TestMultiReporter(t *testing.T) {
	a, b := NewBag("f"), NewBag("f")
	MultiReporter{a, nil, b}.Report("f", NewFinding(BareArithmetic, 2, "((x++))"))
	if len(a.Items()) != 1 || len(b.Items()) != 1 {
		t.Fatalf("fan-out failed: %d %d", len(a.Items()), len(b.Items()))
	}
}
