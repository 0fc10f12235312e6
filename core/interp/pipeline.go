package interp

import (
	"os"
	"os/exec"
)

// runPipeline connects two children through one kernel pipe and waits for
// both, returning the consumer's exit status.
//
// Descriptor ownership is explicit: the producer child holds only the write
// end (as its stdout), the consumer child holds only the read end (as its
// stdin), and the orchestrator closes both of its own ends as soon as both
// children are started. A write end left open here would keep the consumer
// from ever observing end-of-stream.
func (in *Interp) runPipeline(p *Pipeline) int {
	r, w, err := os.Pipe()
	if err != nil {
		in.reportf("pipe: %v", err)
		return statusStartFailed
	}

	producer := exec.Command(p.Producer.Name(), p.Producer[1:]...)
	producer.Stdin = in.Stdin
	producer.Stdout = w
	producer.Stderr = in.Stderr

	consumer := exec.Command(p.Consumer.Name(), p.Consumer[1:]...)
	consumer.Stdin = r
	consumer.Stdout = in.Stdout
	consumer.Stderr = in.Stderr

	if err := producer.Start(); err != nil {
		r.Close()
		w.Close()
		in.reportf("%s: %v", p.Producer.Name(), err)
		return statusStartFailed
	}

	if err := consumer.Start(); err != nil {
		// Don't leave the producer dangling: terminate and reap it before
		// reporting the failure.
		r.Close()
		w.Close()
		_ = producer.Process.Kill()
		_ = reap(producer)
		in.reportf("%s: %v", p.Consumer.Name(), err)
		return statusStartFailed
	}

	r.Close()
	w.Close()

	// The waits are independent; their order doesn't affect correctness,
	// only observed completion order.
	_ = reap(producer)
	return reap(consumer)
}
