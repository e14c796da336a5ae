package main

import (
	"io"
	"io/ioutil"

	"github.com/mspl-lang/gomspl/internal/flushio"
)

type VMOption interface{ apply(vm *VM) }

var defaultOptions = VMOptions(
	withOutput(ioutil.Discard),
)

// VMOptions combines options, skipping nils.
func VMOptions(opts ...VMOption) VMOption { return vmOptions(opts) }

type vmOptions []VMOption

func (opts vmOptions) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type sourceOption struct{ src *Source }

func (o sourceOption) apply(vm *VM) {
	vm.source = o.src
	vm.pc = 0
}

type outputOption struct{ io.Writer }

func withOutput(w io.Writer) outputOption { return outputOption{w} }

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}
