// Package progress wraps sequences so that consuming them emits
// progress events.
//
// Track decorates an iter.Seq without changing what it yields:
//
//	for f := range progress.Slice(stack, files, progress.Config[string]{
//		Description: "copying",
//	}) {
//		copyFile(f)
//	}
//
// Every tracked iteration allocates a fresh sequence id, so nested
// tracked loops produce independently correlated event streams and
// renderers can stack their bars. Rendering is entirely decoupled from
// iteration: with no renderer installed the loop runs exactly as it
// would untracked.
package progress
