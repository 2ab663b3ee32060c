package cordova

import "testing"

func TestSuggestPlatform(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"andriod", "android"},
		{"Android", ""},
		{"io", "ios"},
		{"ios", ""},
		{"webos", ""},
		{"zzzzzz", ""},
	}
	for _, tc := range cases {
		if got := SuggestPlatform(tc.name); got != tc.want {
			t.Errorf("SuggestPlatform(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
