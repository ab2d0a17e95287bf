package queue

import (
	"container/list"
	"sync"
)

// Queue is an unbounded FIFO safe for concurrent producers and consumers.
type Queue[T any] struct {
	rows *list.List
	lock sync.Mutex
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{rows: list.New()}
}

func (self *Queue[T]) Put(data T) {
	self.lock.Lock()
	defer self.lock.Unlock()
	self.rows.PushBack(data)
}

// Get removes the oldest item; ok is false when the queue is empty.
func (self *Queue[T]) Get() (item T, ok bool) {
	self.lock.Lock()
	defer self.lock.Unlock()
	front := self.rows.Front()
	if front == nil {
		return item, false
	}
	self.rows.Remove(front)
	return front.Value.(T), true
}

func (self *Queue[T]) IsEmpty() bool {
	return self.Len() == 0
}

func (self *Queue[T]) Len() int {
	self.lock.Lock()
	defer self.lock.Unlock()
	return self.rows.Len()
}
