package indexedmap

// table is the position index: an open addressing swiss table mapping a
// key to its slot in the dense store.
//
// It never grows by itself. When used plus tombstoned control bytes reach
// 7/8 of the capacity, put reports it and the owner rebuilds the table.
type table[K comparable] struct {
	groups []group[K]

	capacity          uintptr
	numGroupsMask     uintptr
	capacityEffective uintptr
	size              uintptr
	tombstones        uintptr

	hashFunc HashFunc[K]
}

func (t *table[K]) init(capacity int, hashFunc HashFunc[K]) {
	normalizedCapacity := normalizeCapacity(capacity)
	// Number of groups required
	numGroups := normalizedCapacity / groupSize

	t.groups = make([]group[K], numGroups)
	t.capacity = normalizedCapacity
	t.numGroupsMask = numGroups - 1
	t.capacityEffective = normalizedCapacity * 7 / 8
	t.hashFunc = hashFunc

	t.reset()
}

func (t *table[K]) EffectiveCapacity() int {
	return int(t.capacityEffective)
}

// lookup returns the group and the index within it holding key.
func (t *table[K]) lookup(key K) (*group[K], uintptr, bool) {
	h1, h2 := HashSplit(t.hashFunc(key))
	mask := t.numGroupsMask
	start := (h1 / groupSize) & mask

	for p, offset := uintptr(0), start; p <= mask; p++ {
		g := &t.groups[offset]
		ctrl := g.ctrlWord()

		matches := matchH2(ctrl, h2)
		for matches != 0 {
			idx := matches.first()
			if g.keys[idx] == key {
				return g, idx, true
			}

			matches = matches.removeFirst()
		}

		// Termination
		if matchEmpty(ctrl) != 0 {
			return nil, 0, false
		}

		// Quadratic probe math
		offset = (start + (p+1)*(p+2)/2) & mask
	}

	return nil, 0, false
}

func (t *table[K]) get(key K) (int, bool) {
	g, idx, ok := t.lookup(key)
	if !ok {
		return 0, false
	}

	return g.positions[idx], true
}

// put records key at pos, overwriting the position of an existing key.
// Returns false when the table has to be rebuilt first.
func (t *table[K]) put(key K, pos int) bool {
	if t.size+t.tombstones >= t.capacityEffective {
		return false
	}

	var (
		h1, h2 = HashSplit(t.hashFunc(key))
		mask   = t.numGroupsMask
		start  = (h1 / groupSize) & mask

		targetGroup *group[K]
		targetSlot  uintptr
		foundSlot   bool
	)

	for p, offset := uintptr(0), start; p <= mask; p++ {
		g := &t.groups[offset]
		ctrl := g.ctrlWord()

		// 1. Existing check
		matchMask := matchH2(ctrl, h2)
		for matchMask != 0 {
			idx := matchMask.first()
			if g.keys[idx] == key {
				g.positions[idx] = pos
				return true
			}

			matchMask = matchMask.removeFirst()
		}

		// 2. Cache first available slot
		if !foundSlot {
			matchMask = matchEmptyOrDeleted(ctrl)
			if matchMask != 0 {
				targetGroup = g
				targetSlot = matchMask.first()
				foundSlot = true
			}
		}

		// 3. Termination condition
		if matchEmpty(ctrl) != 0 {
			if targetGroup.ctrls[targetSlot] == slotDeleted {
				t.tombstones--
			}

			targetGroup.ctrls[targetSlot] = h2
			targetGroup.keys[targetSlot] = key
			targetGroup.positions[targetSlot] = pos
			t.size++

			return true
		}

		offset = (start + (p+1)*(p+2)/2) & mask
	}

	// Unreachable while the load check above holds: at least 1/8 of the
	// control bytes are empty and the probe sequence visits every group.
	return false
}

// update repoints an existing key. Returns false if key is absent.
func (t *table[K]) update(key K, pos int) bool {
	g, idx, ok := t.lookup(key)
	if !ok {
		return false
	}

	g.positions[idx] = pos

	return true
}

func (t *table[K]) delete(key K) bool {
	g, idx, ok := t.lookup(key)
	if !ok {
		return false
	}

	t.deleteAt(g, idx)

	return true
}

func (t *table[K]) deleteAt(g *group[K], idx uintptr) {
	var zero K
	g.keys[idx] = zero

	// A group that still has an empty byte never ended a probe chain
	// passing through it, so the slot can go straight back to empty.
	if matchEmpty(g.ctrlWord()) != 0 {
		g.ctrls[idx] = slotEmpty
	} else {
		// Mark as Deleted (0xFE) to preserve the probe chain
		g.ctrls[idx] = slotDeleted
		t.tombstones++
	}

	t.size--
}

func (t *table[K]) reset() {
	clear(t.groups)
	for i := range t.groups {
		copy(t.groups[i].ctrls[:], emptyCtrls[:])
	}

	t.size = 0
	t.tombstones = 0
}
