package mocks

import "github.com/stretchr/testify/mock"

// removeCalls returns calls without the given expectations
func removeCalls(calls []*mock.Call, remove []*mock.Call) []*mock.Call {
	if len(remove) == 0 {
		return calls
	}
	kept := make([]*mock.Call, 0, len(calls))
	for _, c := range calls {
		drop := false
		for _, r := range remove {
			if c == r {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, c)
		}
	}
	return kept
}
