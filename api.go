package main

import (
	"context"
	"errors"
	"io"

	"github.com/mspl-lang/gomspl/internal/panicerr"
)

func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Run executes the VM's source to completion, recovering any fatal fault as
// an error. The context is checked between steps.
func (vm *VM) Run(ctx context.Context) error {
	err := panicerr.Recover("VM", func() error {
		vm.run(ctx)
		return nil
	})
	var vmErr vmHaltError
	if errors.As(err, &vmErr) {
		err = vmErr.error
	}
	return err
}

func WithSource(src *Source) VMOption { return sourceOption{src} }
func WithOutput(w io.Writer) VMOption { return withOutput(w) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
