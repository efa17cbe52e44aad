/*
Package errors implements the error vocabulary shared by all custody packages.

Reuse the root errors declared in this package whenever possible and register
a custom root error only when a package needs a distinct category that
clients must be able to tell apart. x/wallet registers its own codes this way.

If you want to register a custom error - use Register(code, description).
For reusing errors - use Errxxx.New, or Wrap and Wrapf.
Code stands for the stable numeric error code that a hosting runtime can return
to its clients.

There is also support for stacktraces. Wrap attaches a stacktrace at the point
of the first wrap only. Do not declare a global `var ErrFoo = ErrInvalidInput.New("foo")`
or you will get a useless stacktrace.

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context
	%s is just the error message
	%+v is the error message followed by the full stack trace
*/
package errors
