package check

import "testing"

func TestClassifyFile(t *testing.T) {
	tests := []struct {
		path string
		want FileKind
	}{
		{"./script/Deploy.s.sol", KindScript},
		{"script/Deploy.s.sol", KindScript},
		{"./script/helpers/Shared.sol", KindNone},
		{"./src/Counter.sol", KindSrc},
		{"./src/nested/Counter.sol", KindSrc},
		{"./test/Counter.t.sol", KindTest},
		{"./test/helpers/Shared.sol", KindNone},
		// суффикс сравнивается буквально, .t.sol в src не делает файл тестом
		{"./src/Counter.t.sol", KindSrc},
		{"./lib/forge-std/src/Test.sol", KindNone},
		{"./README.md", KindNone},
	}

	for _, tt := range tests {
		if got := ClassifyFile(tt.path); got != tt.want {
			t.Fatalf("ClassifyFile(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}
