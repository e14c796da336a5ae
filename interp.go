package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/mspl-lang/gomspl/internal/flushio"
)

// VM executes a parsed Source against an explicit integer value stack. The
// stack is owned by a single run; the Source is never mutated.
type VM struct {
	source *Source

	pc    int
	stack []int

	out   flushio.WriteFlusher
	logfn func(mess string, args ...interface{})
}

func (vm *VM) logf(mess string, args ...interface{}) {
	if vm.logfn != nil {
		vm.logfn(mess, args...)
	}
}

func (vm *VM) withLogPrefix(prefix string) func() {
	logfn := vm.logfn
	vm.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		vm.logfn = logfn
	}
}

func (vm *VM) halt(err error) {
	if vm.out != nil {
		if ferr := vm.out.Flush(); err == nil {
			err = ferr
		}
	}
	vm.logf("halt error: %v", err)
	panic(vmHaltError{err})
}

func (vm *VM) haltif(err error) {
	if err != nil {
		vm.halt(err)
	}
}

func (vm *VM) push(val int) {
	vm.stack = append(vm.stack, val)
}

// pop faults the run when the stack is empty, tagging the error with the
// operator that needed the value.
func (vm *VM) pop(op operator) (val int) {
	i := len(vm.stack) - 1
	if i < 0 {
		vm.halt(underflowError{op})
	}
	val, vm.stack = vm.stack[i], vm.stack[:i]
	return val
}

// step dispatches the operator under the program counter.
func (vm *VM) step() {
	op := vm.source.ops[vm.pc]
	vm.logf("exec @%v %v -- s:%v", vm.pc, op, vm.stack)
	switch op.kind {
	case opPushInt:
		vm.push(op.lit)
		vm.pc++

	case opIntrinsic:
		a, b := vm.pop(op), vm.pop(op)
		switch op.code {
		case intrinsicAdd:
			vm.push(a + b)
		case intrinsicSub:
			vm.push(b - a)
		case intrinsicMul:
			vm.push(a * b)
		default:
			vm.halt(codeError(op.code))
		}
		vm.pc++

	case opIf:
		if vm.pop(op) == 0 {
			vm.pc = op.target // condition false: skip to the endif
		} else {
			vm.pc++
		}

	case opEndIf:
		// fallthrough join point: target is its own address + 1
		vm.pc = op.target

	default:
		vm.halt(codeError(op.kind))
	}
}

// exec runs operators until the program counter passes the last one. Every
// program terminates within Len() steps: no operator moves the counter
// backward.
func (vm *VM) exec(ctx context.Context) {
	if vm.logfn != nil {
		defer vm.withLogPrefix("\t")()
	}
	for vm.pc < vm.source.Len() {
		vm.step()
		vm.haltif(ctx.Err())
	}
	if vm.out != nil {
		vm.haltif(vm.out.Flush())
	}
}

func (vm *VM) run(ctx context.Context) {
	if vm.source == nil {
		vm.halt(errNoSource)
	}
	vm.pc = 0
	vm.exec(ctx)
	vm.printStack()
}

// printStack renders the final value stack through the configured output,
// the run's one user-visible result.
func (vm *VM) printStack() {
	if vm.out == nil {
		return
	}
	_, err := fmt.Fprintf(vm.out, "%v\n", vm.stack)
	vm.haltif(err)
	vm.haltif(vm.out.Flush())
}

// Stack exposes the value stack for inspection after a run.
func (vm *VM) Stack() []int { return vm.stack }

type vmHaltError struct{ error }

func (err vmHaltError) Error() string { return fmt.Sprintf("halted: %v", err.error) }
func (err vmHaltError) Unwrap() error { return err.error }

// underflowError is a fatal runtime fault: an operator needed more values
// than the stack holds.
type underflowError struct{ op operator }

func (err underflowError) Error() string {
	return fmt.Sprintf("%v - stack underflow in %v", err.op.token.loc, err.op)
}

type codeError uint8

func (code codeError) Error() string { return fmt.Sprintf("invalid operator code %v", uint8(code)) }

var errNoSource = errors.New("no source to run")
