package areaslack

import (
	"bufio"
	"io"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func TestScanLines(t *testing.T) {
	cases := []struct {
		in  string
		out []string
	}{
		{"", nil},
		{"one", []string{"one"}},
		{"one\ntwo\n", []string{"one", "two"}},
		{"one\r\ntwo\r\n", []string{"one", "two"}},
		{"one\rtwo\r", []string{"one", "two"}},
		{"one\r\rtwo", []string{"one", "", "two"}},
		{"one\n\r\ntwo\r\n\n", []string{"one", "", "two", ""}},
		{"one\r", []string{"one"}},
		{"\r\n", []string{""}},
	}

	for _, tc := range cases {
		for name, r := range map[string]io.Reader{
			"whole":   strings.NewReader(tc.in),
			"onebyte": iotest.OneByteReader(strings.NewReader(tc.in)),
		} {
			sc := bufio.NewScanner(r)
			sc.Split(scanLines)
			var res []string
			for sc.Scan() {
				res = append(res, sc.Text())
			}
			if err := sc.Err(); err != nil {
				t.Errorf("%s %q: %v", name, tc.in, err)
			}
			if !reflect.DeepEqual(res, tc.out) {
				t.Errorf("%s %q -> %q, expected %q", name, tc.in, res, tc.out)
			}
		}
	}
}
