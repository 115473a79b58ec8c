// Package sais builds a suffix array by induced sorting (SA-IS) over a
// fixed 257-symbol alphabet: byte values 0..255 shifted up by one, plus an
// implicit sentinel symbol (value 0) that is strictly smaller than any byte
// and appended once at the end of the text. Construction runs in O(n) time
// and O(n) additional space.
//
// The induction scheme (LMS classification, bucket sort, recursive naming
// of LMS substrings) is the classical Nong/Zhang/Chen algorithm.
package sais

// Build computes the suffix array of text with an implicit sentinel
// strictly smaller than any byte appended at the end. The returned slice
// has length len(text)+1 and is a permutation of [0, len(text)+1): SA[i] is
// the starting offset of the i-th suffix in lexicographic order, with the
// sentinel-only suffix (offset len(text)) sorted first.
func Build(text []byte) []int32 {
	n := len(text) + 1
	data := make([]int32, n)

	for i, b := range text {
		data[i] = int32(b) + 1
	}

	data[len(text)] = 0

	sa := make([]int32, n)
	computeSuffixArray(data, sa, 0, n, 257)
	return sa
}

func getCounts(src, dst []int32, n, k int) {
	for i := 0; i < k; i++ {
		dst[i] = 0
	}

	for i := 0; i < n; i++ {
		dst[src[i]]++
	}
}

func getBuckets(src, dst []int32, k int, end bool) {
	sum := int32(0)

	if end {
		for i := 0; i < k; i++ {
			sum += src[i]
			dst[i] = sum
		}
	} else {
		for i := 0; i < k; i++ {
			tmp := src[i]
			dst[i] = sum
			sum += tmp
		}
	}
}

// sortLMSSuffixes sorts all type LMS suffixes into sa, using the bucket
// arrays pointed to by ptrC/ptrB (which may alias the same backing array).
func sortLMSSuffixes(src []int32, sa []int32, ptrC, ptrB *[]int32, n, k int) {
	if ptrC == ptrB {
		getCounts(src, *ptrC, n, k)
	}

	B := *ptrB
	C := *ptrC

	getBuckets(C, B, k, false)

	j := n - 1
	c1 := src[j]
	b := B[c1]
	j--

	if src[j] < c1 {
		sa[b] = ^j32(j)
	} else {
		sa[b] = int32(j)
	}

	b++

	for i := 0; i < n; i++ {
		jj := sa[i]

		if jj > 0 {
			j = int(jj)
			c0 := src[j]

			if c0 != c1 {
				B[c1] = b
				c1 = c0
				b = B[c1]
			}

			j--

			if src[j] < c1 {
				sa[b] = ^j32(j)
			} else {
				sa[b] = int32(j)
			}

			b++
			sa[i] = 0
		} else if jj < 0 {
			sa[i] = ^jj
		}
	}

	if ptrC == ptrB {
		getCounts(src, C, n, k)
	}

	getBuckets(C, B, k, true)
	c1 = 0
	b = B[c1]

	for i := n - 1; i >= 0; i-- {
		jj := sa[i]

		if jj <= 0 {
			continue
		}

		j = int(jj)
		c0 := src[j]

		if c0 != c1 {
			B[c1] = b
			c1 = c0
			b = B[c1]
		}

		j--
		b--

		if src[j] > c1 {
			sa[b] = ^j32(j + 1)
		} else {
			sa[b] = int32(j)
		}

		sa[i] = 0
	}
}

func postProcessLMS(src, sa []int32, n, m int) int {
	i := 0
	j := 0

	for p := sa[i]; p < 0; i++ {
		sa[i] = ^p
		p = sa[i+1]
	}

	if i < m {
		j = i
		i++

		for {
			p := sa[i]
			i++

			if p >= 0 {
				continue
			}

			sa[j] = ^p
			sa[i-1] = 0
			j++

			if j == m {
				break
			}
		}
	}

	i = n - 2
	j = n - 1
	c0 := src[n-2]
	c1 := src[n-1]

	if i >= 0 {
		for c0 >= c1 {
			c1 = c0
			i--

			if i < 0 {
				break
			}

			c0 = src[i]
		}
	}

	for i >= 0 {
		c1 = c0
		i--

		if i < 0 {
			break
		}

		c0 = src[i]

		for c0 <= c1 {
			c1 = c0
			i--

			if i < 0 {
				break
			}

			c0 = src[i]
		}

		if i < 0 {
			break
		}

		sa[m+((i+1)>>1)] = int32(j - i)
		j = i + 1
		c1 = c0
		i--

		if i >= 0 {
			c0 = src[i]

			for c0 >= c1 {
				c1 = c0
				i--

				if i < 0 {
					break
				}

				c0 = src[i]
			}
		}
	}

	name := 0
	q := n
	qlen := 0

	for ii := 0; ii < m; ii++ {
		p := int(sa[ii])
		plen := int(sa[m+(p>>1)])
		diff := true

		if plen == qlen && q+plen < n {
			jj := 0

			for jj < plen && src[p+jj] == src[q+jj] {
				jj++
			}

			if jj == plen {
				diff = false
			}
		}

		if diff {
			name++
			q = p
			qlen = plen
		}

		sa[m+(p>>1)] = int32(name)
	}

	return name
}

func induceSuffixArray(src, sa []int32, ptrBuf1, ptrBuf2 *[]int32, n, k int) {
	buf1 := *ptrBuf1
	buf2 := *ptrBuf2

	if ptrBuf1 == ptrBuf2 {
		getCounts(src, buf1, n, k)
	}

	getBuckets(buf1, buf2, k, false)

	j := n - 1
	c1 := src[j]
	b := buf2[c1]

	if j > 0 && src[j-1] < c1 {
		sa[b] = ^j32(j)
	} else {
		sa[b] = int32(j)
	}

	b++

	for i := 0; i < n; i++ {
		jj := sa[i]
		sa[i] = ^jj

		if jj <= 0 {
			continue
		}

		j = int(jj) - 1
		c0 := src[j]

		if c0 != c1 {
			buf2[c1] = b
			c1 = c0
			b = buf2[c1]
		}

		if j > 0 && src[j-1] < c1 {
			sa[b] = ^j32(j)
		} else {
			sa[b] = int32(j)
		}

		b++
	}

	if ptrBuf1 == ptrBuf2 {
		getCounts(src, buf1, n, k)
	}

	getBuckets(buf1, buf2, k, true)
	c1 = 0
	b = buf2[c1]

	for i := n - 1; i >= 0; i-- {
		jj := sa[i]

		if jj <= 0 {
			sa[i] = ^jj
			continue
		}

		j = int(jj) - 1
		c0 := src[j]

		if c0 != c1 {
			buf2[c1] = b
			c1 = c0
			b = buf2[c1]
		}

		b--

		if j == 0 || src[j-1] > c1 {
			sa[b] = ^j32(j)
		} else {
			sa[b] = int32(j)
		}
	}
}

// computeSuffixArray fills sa[0:n] with the suffix array of src[0:n] over
// an alphabet of size k (values in [0,k)). fs is the amount of extra free
// space available at sa[n:n+fs], used to avoid extra allocations during the
// recursive reduction step.
func computeSuffixArray(src, sa []int32, fs, n, k int) {
	var B, C []int32
	var ptrB, ptrC *[]int32
	flags := 0

	if k <= 256 {
		C = make([]int32, k)
		ptrC = &C

		if k <= fs {
			B = sa[n+fs-k:]
			flags = 1
		} else {
			B = make([]int32, k)
			flags = 3
		}

		ptrB = &B
	} else if k <= fs {
		C = sa[n+fs-k:]
		ptrC = &C

		if k <= fs-k {
			B = sa[n+fs-(k+k):]
			ptrB = &B
			flags = 0
		} else if k <= 1024 {
			B = make([]int32, k)
			ptrB = &B
			flags = 2
		} else {
			ptrB = ptrC
			B = *ptrB
			flags = 8
		}
	} else {
		B = make([]int32, k)
		ptrB = &B
		ptrC = ptrB
		C = *ptrC
		flags = 12
	}

	// Stage 1: reduce the problem by at least half — sort all LMS substrings.
	getCounts(src, C, n, k)
	getBuckets(C, B, k, true)

	for ii := 0; ii < n; ii++ {
		sa[ii] = 0
	}

	b := -1
	i := n - 1
	j := n
	m := 0
	c0 := src[n-1]
	c1 := c0

	for c0 >= c1 {
		c1 = c0
		i--

		if i < 0 {
			break
		}

		c0 = src[i]
	}

	for i >= 0 {
		for {
			c1 = c0
			i--

			if i < 0 {
				break
			}

			c0 = src[i]

			if c0 > c1 {
				break
			}
		}

		if i < 0 {
			break
		}

		if b >= 0 {
			sa[b] = int32(j)
		}

		B[c1]--
		b = int(B[c1])
		j = i
		m++

		for {
			c1 = c0
			i--

			if i < 0 {
				break
			}

			c0 = src[i]

			if c0 < c1 {
				break
			}
		}
	}

	name := 0

	if m > 1 {
		sortLMSSuffixes(src, sa, ptrC, ptrB, n, k)
		name = postProcessLMS(src, sa, n, m)
	} else if m == 1 {
		sa[b] = int32(j + 1)
		name = 1
	}

	// Stage 2: solve the reduced problem, recursing if names are not unique.
	if name < m {
		newfs := (n + fs) - (m + m)

		if flags&13 == 0 {
			if k+name <= newfs {
				newfs -= k
			} else {
				flags |= 8
			}
		}

		j = m + m + newfs - 1

		for ii := m + (n >> 1) - 1; ii >= m; ii-- {
			if sa[ii] != 0 {
				sa[j] = sa[ii] - 1
				j--
			}
		}

		computeSuffixArray(sa[m+newfs:], sa, newfs, m, name)

		i = n - 1
		j = m + m - 1
		c0 = src[i]

		for {
			c1 = c0
			i--

			if i < 0 {
				break
			}

			c0 = src[i]

			if c0 < c1 {
				break
			}
		}

		for i >= 0 {
			for {
				c1 = c0
				i--

				if i < 0 {
					break
				}

				c0 = src[i]

				if c0 > c1 {
					break
				}
			}

			if i < 0 {
				break
			}

			sa[j] = int32(i + 1)
			j--

			for {
				c1 = c0
				i--

				if i < 0 {
					break
				}

				c0 = src[i]

				if c0 < c1 {
					break
				}
			}
		}

		for ii := 0; ii < m; ii++ {
			sa[ii] = sa[m+int(sa[ii])]
		}

		if flags&4 != 0 {
			B = make([]int32, k)
			ptrB = &B
			ptrC = ptrB
			C = *ptrC
		} else if flags&2 != 0 {
			B = make([]int32, k)
			ptrB = &B
		}
	}

	// Stage 3: induce the result for the original problem.
	if flags&8 != 0 {
		getCounts(src, C, n, k)
	}

	if m > 1 {
		getBuckets(C, B, k, true)
		i = m - 1
		j = n
		p := int(sa[m-1])
		c1 = src[p]

		for {
			c0 = c1
			q := int(B[c0])

			for q < j {
				j--
				sa[j] = 0
			}

			for {
				j--
				sa[j] = int32(p)
				i--

				if i < 0 {
					break
				}

				p = int(sa[i])
				c1 = src[p]

				if c1 != c0 {
					break
				}
			}

			if i < 0 {
				break
			}
		}

		for j > 0 {
			j--
			sa[j] = 0
		}
	}

	induceSuffixArray(src, sa, ptrC, ptrB, n, k)
}

// j32 widens an int to int32 for use with the bitwise-complement markers
// the induction scheme uses to distinguish "already sorted" slots.
func j32(j int) int32 {
	return int32(j)
}
