// SPDX-License-Identifier: MIT
//
// File: access.go
// Role: Breadth-first exploration from the initial state. Expanding edges in
//       symbol order yields the length-lexicographically least access word of
//       every reachable state.

package ts

// queueItem pairs a state with the word that first reached it.
type queueItem struct {
	state  State
	access string
}

// walker encapsulates mutable BFS state.
type walker struct {
	sys     TransitionSystem
	queue   []queueItem
	visited []bool
	words   []string
}

// AccessWords returns, for every state, the length-lexicographically least
// word leading to it from the initial state. Unreachable states get "" and are
// reported by the second result (false means some state is unreachable).
//
// Complexity: O(V + E log d) where d is the maximum out-degree.
func AccessWords(sys TransitionSystem) ([]string, bool) {
	n := sys.Size()
	w := &walker{
		sys:     sys,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		words:   make([]string, n),
	}
	w.enqueue(sys.Initial(), "")
	reached := w.loop()

	return w.words, reached == n
}

// Reachable returns the states reachable from the initial state in BFS order.
func Reachable(sys TransitionSystem) []State {
	w := &walker{
		sys:     sys,
		visited: make([]bool, sys.Size()),
		words:   make([]string, sys.Size()),
	}
	w.enqueue(sys.Initial(), "")
	order := make([]State, 0, sys.Size())
	for len(w.queue) > 0 {
		item := w.dequeue()
		order = append(order, item.state)
		w.enqueueSuccessors(item)
	}

	return order
}

// enqueue marks q visited and records its access word.
func (w *walker) enqueue(q State, access string) {
	w.visited[q] = true
	w.words[q] = access
	w.queue = append(w.queue, queueItem{state: q, access: access})
}

// loop drains the queue and returns the number of visited states.
func (w *walker) loop() int {
	count := 0
	for len(w.queue) > 0 {
		item := w.dequeue()
		count++
		w.enqueueSuccessors(item)
	}

	return count
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// enqueueSuccessors visits targets in symbol order; the first word to reach a
// state is its least access word.
func (w *walker) enqueueSuccessors(item queueItem) {
	for _, e := range w.sys.EdgesFrom(item.state) {
		if !w.visited[e.Target] {
			w.enqueue(e.Target, item.access+string(e.Symbol))
		}
	}
}
