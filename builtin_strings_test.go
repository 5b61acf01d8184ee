package mussel

import "testing"

func Test_Builtin_Strings_Length_CodePoints(t *testing.T) {
	wantInt(t, evalSrc(t, `include string
length("hello")`), 5)
	wantInt(t, evalSrc(t, `include string
length("héllo")`), 5)
	wantInt(t, evalSrc(t, `include string
length("")`), 0)
}

func Test_Builtin_Strings_Concat(t *testing.T) {
	wantStr(t, evalSrc(t, `include string
concat("ab", "cd")`), "abcd")
	// length(concat(a, b)) == length(a) + length(b)
	wantBool(t, evalSrc(t, `include string
length(concat("abc", "de")) == length("abc") + length("de")`), true)
}

func Test_Builtin_Strings_Split(t *testing.T) {
	out := runSrc(t, `include string
println(split("a,b,c", ","))`)
	if out != "[a, b, c]\n" {
		t.Fatalf("got %q", out)
	}
	out = runSrc(t, `include string
println(split("abc", "|"))`)
	if out != "[abc]\n" {
		t.Fatalf("split without separator hit: got %q", out)
	}
}

func Test_Builtin_Strings_Split_EmptySep_Fails(t *testing.T) {
	wantKind(t, evalErr(t, `include string
split("abc", "")`), DiagRuntime)
}

func Test_Builtin_Strings_Split_RoundTrips_Concat(t *testing.T) {
	v := evalSrc(t, `include string
let joined = concat(concat("left", ";"), "right")
split(joined, ";")`)
	xs := v.Data.([]Value)
	if len(xs) != 2 {
		t.Fatalf("want 2 parts, got %#v", v)
	}
	wantStr(t, xs[0], "left")
	wantStr(t, xs[1], "right")
}

func Test_Builtin_Strings_Reverse(t *testing.T) {
	wantStr(t, evalSrc(t, `include string
reverse("abc")`), "cba")
	wantStr(t, evalSrc(t, `include string
reverse("héllo")`), "olléh")
	wantStr(t, evalSrc(t, `include string
reverse(reverse("mussel"))`), "mussel")
}

func Test_Builtin_Strings_Trim_Family(t *testing.T) {
	wantStr(t, evalSrc(t, `include string
trim("  x  ")`), "x")
	wantStr(t, evalSrc(t, `include string
ltrim("  x  ")`), "x  ")
	wantStr(t, evalSrc(t, `include string
rtrim("  x  ")`), "  x")
}

func Test_Builtin_Strings_Case(t *testing.T) {
	wantStr(t, evalSrc(t, `include string
lowercase("HeLLo")`), "hello")
	wantStr(t, evalSrc(t, `include string
uppercase("HeLLo")`), "HELLO")
}

func Test_Builtin_Strings_TypeChecks(t *testing.T) {
	wantKind(t, evalErr(t, `include string
length(5)`), DiagType)
	wantKind(t, evalErr(t, `include string
concat("a", 1)`), DiagType)
}
