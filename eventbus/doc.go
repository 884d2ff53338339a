// Package eventbus mirrors scheduler notifications onto a Redis pub/sub
// channel, so a process other than the one running the scheduler (a UI, a
// log shipper) can observe batch progress without holding a direct
// reference to the Scheduler.
//
// It carries only the Publish/Subscribe half of a generic Redis work-queue
// client: there's no distributed work queue here, since a Scheduler owns
// and dispatches its own batch in-process.
package eventbus
