// Package observer содержит простой синхронный механизм подписок,
// через который store и координатор выбора уведомляют представления.
package observer

import "sync"

// Subject хранит подписчиков на значения типа T
type Subject[T any] struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func(T)
	order     []int
}

func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{listeners: make(map[int]func(T))}
}

// Subscribe регистрирует обработчик и возвращает функцию отписки
func (s *Subject[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.listeners[id]; !ok {
			return
		}
		delete(s.listeners, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// Notify вызывает подписчиков в порядке регистрации. Вызывать без удержания
// внешних блокировок: обработчики могут обращаться обратно к источнику.
func (s *Subject[T]) Notify(v T) {
	s.mu.Lock()
	fns := make([]func(T), 0, len(s.order))
	for _, id := range s.order {
		fns = append(fns, s.listeners[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Len - количество активных подписчиков
func (s *Subject[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
