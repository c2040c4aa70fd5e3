package path

// NextAssignedIndex finds the first assigned waypoint after slot from.
// If wrap is set and the path is a closed circuit, the scan continues at
// slot 0 after the end of the list. Every slot is visited at most once and
// slot from itself is never reported, so a single assigned waypoint has no
// successor even on a closed circuit. If no assigned waypoint is found,
// false is returned.
func NextAssignedIndex(path *Path, from int, wrap bool) (int, bool) {
	if path == nil {
		return -1, false
	}
	n := path.N()
	for i := max(from+1, 0); i < n; i++ {
		if _, ok := path.assigned(i); ok {
			return i, true
		}
	}
	if !wrap || !path.IsCycle() {
		return -1, false
	}
	for i := 0; i < min(from, n); i++ {
		if _, ok := path.assigned(i); ok {
			return i, true
		}
	}
	return -1, false
}

// PreviousAssignedIndex finds the first assigned waypoint before slot from,
// mirroring NextAssignedIndex.
func PreviousAssignedIndex(path *Path, from int, wrap bool) (int, bool) {
	if path == nil {
		return -1, false
	}
	n := path.N()
	for i := min(from-1, n-1); i >= 0; i-- {
		if _, ok := path.assigned(i); ok {
			return i, true
		}
	}
	if !wrap || !path.IsCycle() {
		return -1, false
	}
	for i := n - 1; i > max(from, -1); i-- {
		if _, ok := path.assigned(i); ok {
			return i, true
		}
	}
	return -1, false
}

// FirstAssignedIndex returns the first assigned slot of a path.
func FirstAssignedIndex(path *Path) (int, bool) {
	return NextAssignedIndex(path, -1, false)
}

// LastAssignedIndex returns the last assigned slot of a path.
func LastAssignedIndex(path *Path) (int, bool) {
	if path == nil {
		return -1, false
	}
	return PreviousAssignedIndex(path, path.N(), false)
}

// AssignedCount returns the number of assigned waypoints.
func AssignedCount(path *Path) int {
	if path == nil {
		return 0
	}
	cnt := 0
	for i := range path.waypoints {
		if _, ok := path.assigned(i); ok {
			cnt++
		}
	}
	return cnt
}
