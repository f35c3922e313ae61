package syntax

import (
	"strings"
	"testing"
)

var partitionInputs = []string{
	"",
	" ",
	"ls",
	"ls -aFhl",
	"  ls   -la  ",
	`echo "hello world"`,
	`echo 'it''s'`,
	"echo `date`",
	`KEY="1" ls -aFhl`,
	`KEY="1 ls -aFhl`,
	`echo "unterminated`,
	`a"b"c`,
	`"\"" x`,
	"tab\tsep\narated",
	"héllo wörld",
	"日本語 \"引用\" テスト",
	"emoji 🦀 'x'",
	"=",
	"KEY=",
	"KEY= ls",
	`KEY"x" ls`,
	"A=1 B=2 C=3",
}

func TestTokenizeLosslessPartition(t *testing.T) {
	for _, s := range partitionInputs {
		var b strings.Builder
		for _, arg := range Tokenize(s) {
			b.WriteString(arg.Raw())
		}
		if got := b.String(); got != s {
			t.Errorf("Tokenize(%q) joined = %q, want %q", s, got, s)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []Arg
	}{
		{"", nil},
		{"ls", []Arg{ValueToken(Word("ls"))}},
		{"ls -la", []Arg{
			ValueToken(Word("ls")),
			WhitespaceToken(" "),
			ValueToken(Word("-la")),
		}},
		{`  "a b"`, []Arg{
			WhitespaceToken("  "),
			ValueToken(Quoted(DoubleQuote, "a b")),
		}},
		{`a"b"c`, []Arg{
			ValueToken(Word("a")),
			ValueToken(Quoted(DoubleQuote, "b")),
			ValueToken(Word("c")),
		}},
		{"'x' `y`", []Arg{
			ValueToken(Quoted(SingleQuote, "x")),
			WhitespaceToken(" "),
			ValueToken(Quoted(Backtick, "y")),
		}},
		{`echo "open`, []Arg{
			ValueToken(Word("echo")),
			WhitespaceToken(" "),
			ValueToken(IncompleteQuoted(DoubleQuote, "open")),
		}},
		{`"`, []Arg{ValueToken(IncompleteQuoted(DoubleQuote, ""))}},
		{`""`, []Arg{ValueToken(Quoted(DoubleQuote, ""))}},
		{`"a\"b"`, []Arg{ValueToken(Quoted(DoubleQuote, `a\"b`))}},
		{`'a"b'`, []Arg{ValueToken(Quoted(SingleQuote, `a"b`))}},
		{"héllo wörld", []Arg{
			ValueToken(Word("héllo")),
			WhitespaceToken(" "),
			ValueToken(Word("wörld")),
		}},
		{"\t\n x", []Arg{
			WhitespaceToken("\t\n "),
			ValueToken(Word("x")),
		}},
	}

	for _, tt := range tests {
		got := Tokenize(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("Tokenize(%q) = %#v, want %#v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Tokenize(%q)[%d] = %#v, want %#v", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestArgsOffset(t *testing.T) {
	s := "日本 語"
	args := NewArgs(s)
	want := []int{len("日本"), len("日本 "), len(s)}
	for i, w := range want {
		if _, ok := args.Next(); !ok {
			t.Fatalf("Next() #%d ok = false", i)
		}
		if got := args.Offset(); got != w {
			t.Errorf("Offset() after #%d = %d, want %d", i, got, w)
		}
	}
	if _, ok := args.Next(); ok {
		t.Error("Next() after end ok = true, want false")
	}
	if got := args.Offset(); got != len(s) {
		t.Errorf("Offset() at end = %d, want %d", got, len(s))
	}
}

func TestLastArg(t *testing.T) {
	tests := []struct {
		input  string
		want   Arg
		wantOK bool
	}{
		{"", Arg{}, false},
		{"ls", ValueToken(Word("ls")), true},
		{"ls ", WhitespaceToken(" "), true},
		{`ls "a`, ValueToken(IncompleteQuoted(DoubleQuote, "a")), true},
	}

	for _, tt := range tests {
		got, ok := LastArg(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("LastArg(%q) = %#v, %v, want %#v, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFirstArg(t *testing.T) {
	got, ok := FirstArg(" ls")
	if !ok || !got.IsWhitespace() {
		t.Errorf("FirstArg(%q) = %#v, %v, want whitespace", " ls", got, ok)
	}
	if _, ok := FirstArg(""); ok {
		t.Error("FirstArg(\"\") ok = true, want false")
	}
}

func TestTokenQuoteOf(t *testing.T) {
	tok := ValueToken(Quoted(SingleQuote, "x"))
	if q, ok := tok.QuoteOf(); !ok || q != SingleQuote {
		t.Errorf("QuoteOf() = %v, %v, want SingleQuote, true", q, ok)
	}
	if _, ok := ValueToken(Word("x")).QuoteOf(); ok {
		t.Error("Word QuoteOf() ok = true, want false")
	}
	if _, ok := WhitespaceToken(" ").QuoteOf(); ok {
		t.Error("Whitespace QuoteOf() ok = true, want false")
	}
}
