// Package log provides a minimal structured logging facade.
//
// Library packages log through the [Logger] interface so hosting code can
// plug in its own backend. [NewZerologAdapter] provides a zerolog-backed
// console implementation and [NewNop] a silent one.
package log
