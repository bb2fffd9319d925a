package async

import (
	"context"
	"fmt"
)

// Task is a named operation run by RunParallel.
type Task struct {
	Name string
	Func func(context.Context) error
}

// RunParallel runs every task concurrently and waits for all of them. The
// error of the first task to fail is returned, prefixed with its name.
//
// Example:
//
//	tasks := []Task{
//	    {Name: "health", Func: checkHealth},
//	    {Name: "status", Func: checkStatus},
//	}
//	if err := RunParallel(ctx, tasks); err != nil {
//	    return err
//	}
func RunParallel(ctx context.Context, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}

	type result struct {
		name string
		err  error
	}

	results := make(chan result, len(tasks))
	for _, task := range tasks {
		go func() {
			results <- result{name: task.Name, err: task.Func(ctx)}
		}()
	}

	var firstErr error
	for range len(tasks) {
		res := <-results
		if res.err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", res.name, res.err)
		}
	}
	return firstErr
}

// Errors runs every task concurrently and returns each failure keyed by task
// name. A nil map means every task succeeded.
func Errors(ctx context.Context, tasks []Task) map[string]error {
	type result struct {
		name string
		err  error
	}

	results := make(chan result, len(tasks))
	for _, task := range tasks {
		go func() {
			results <- result{name: task.Name, err: task.Func(ctx)}
		}()
	}

	var failed map[string]error
	for range len(tasks) {
		res := <-results
		if res.err == nil {
			continue
		}
		if failed == nil {
			failed = make(map[string]error)
		}
		failed[res.name] = res.err
	}
	return failed
}
