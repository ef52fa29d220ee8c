package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		for _, alive := range []bool{false, true} {
			want := false
			switch neighbors {
			case 2:
				want = alive
			case 3:
				want = true
			}
			if got := ApplyConwayRules(neighbors, alive); got != want {
				t.Errorf("ApplyConwayRules(%d, %v) = %v, want %v", neighbors, alive, got, want)
			}
		}
	}
}
