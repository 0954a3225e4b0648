package assert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sort"

	"maxsubarray/app/pkg/shutdown"
	"maxsubarray/app/pkg/utils/mapx"
)

type AssertData mapx.BasicMap

var ctxCancel context.CancelFunc = nil

// exit is swapped in tests.
var exit = shutdown.Shutdown

// This function should be called as soon as the context is created
func LoadCtxCancel(cancel context.CancelFunc) {
	ctxCancel = cancel
}

func runAssert(msg string, dataArgs ...AssertData) {
	slogData := AssertData{}
	for _, data := range dataArgs {
		duplicateKeys := mapx.CopyNoDuplicates(
			(mapx.BasicMap)(data),
			(mapx.BasicMap)(slogData),
		)

		for _, dk := range duplicateKeys {
			fmt.Fprintf(os.Stderr, "WARNING: Duplicate key %s. Renaming to %s\n", dk, dk+"_")
		}
	}

	keys := make([]string, 0, len(slogData))
	for k := range slogData {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, 2*len(keys)+2)
	for _, k := range keys {
		attrs = append(attrs, k, slogData[k])
	}
	attrs = append(attrs, "stack", string(debug.Stack()))

	if ctxCancel != nil {
		ctxCancel()
	}
	slog.Error("ASSERT: "+msg, attrs...)
	exit(1)
}

func Assert(truth bool, msg string, dataArgs ...AssertData) {
	if !truth {
		runAssert(msg, dataArgs...)
	}
}

func Never(msg string, dataArgs ...AssertData) {
	slog.Error("Never#never encountered")
	runAssert(msg, dataArgs...)
}

func NoError(err error, msg string, dataArgs ...AssertData) {
	if err != nil {
		slog.Error("NoError#error encountered", "error", err)
		dataArgs = append(dataArgs, AssertData{"error": err})
		runAssert(msg, dataArgs...)
	}
}
