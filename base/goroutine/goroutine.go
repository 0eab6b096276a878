package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/marketgo/base/log"
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

// RecoverableGo runs f on a new goroutine with panic isolation. The returned
// channel emits at most one event, then closes when f has ended.
func RecoverableGo(f func()) chan *PanicEvent {
	panicChan := make(chan *PanicEvent, 1)

	go func() {
		defer close(panicChan)
		defer func() {
			if p := recover(); p != nil {
				stack := debug.Stack()
				log.Log().WithFields(log.Fields{
					"panic": p,
					"stack": string(stack),
				}).Error("goroutine panicked")
				panicChan <- &PanicEvent{Panic: p, Stack: stack}
			}
		}()
		f()
	}()

	return panicChan
}

// Join waits for every goroutine started by RecoverableGo to end
func Join(chans ...chan *PanicEvent) []*PanicEvent {
	var events []*PanicEvent
	for _, ch := range chans {
		for ev := range ch {
			events = append(events, ev)
		}
	}
	return events
}
