package trampoline

// Middleware runs around a single step invocation. It must call invoker to evaluate the step.
type Middleware[S any, T any] func(state S, invoker Step[S, T]) (Bounce[S, T], error)

// Chain wraps step with middlewares, the first one is the outermost.
// Defer bounces re-enter the chained step, so middlewares see every self call.
// A DeferTo bounce leaves the chain for the step it names.
func Chain[S any, T any](step Step[S, T], middlewares ...Middleware[S, T]) Step[S, T] {
	if step == nil || len(middlewares) == 0 {
		return step
	}
	return func(state S) (Bounce[S, T], error) {
		return middlewares[0](state, getInvoker(middlewares, 0, step))
	}
}

func getInvoker[S any, T any](middlewares []Middleware[S, T], curr int, finalInvoker Step[S, T]) Step[S, T] {
	if curr == len(middlewares)-1 {
		return finalInvoker
	}
	return func(state S) (Bounce[S, T], error) {
		return middlewares[curr+1](state, getInvoker(middlewares, curr+1, finalInvoker))
	}
}
