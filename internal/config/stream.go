package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ParseCases reads the classic whitespace separated stream: the case count,
// then per case "M N K T" followed by five life and five attack values.
func ParseCases(r io.Reader) ([]Scenario, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("%w: missing %s", ErrInvalidScenario, what)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrInvalidScenario, what, err)
		}
		return v, nil
	}

	n, err := next("case count")
	if err != nil {
		return nil, err
	}
	cases := make([]Scenario, 0, n)
	for c := 1; c <= n; c++ {
		var s Scenario
		fields := []*int{&s.Resources, &s.Cities, &s.LoyaltyDecay, &s.Horizon}
		for i := range s.Life {
			fields = append(fields, &s.Life[i])
		}
		for i := range s.Attack {
			fields = append(fields, &s.Attack[i])
		}
		for i, f := range fields {
			if *f, err = next(fmt.Sprintf("case %d value %d", c, i+1)); err != nil {
				return nil, err
			}
		}
		cases = append(cases, s)
	}
	return prepare(cases)
}
