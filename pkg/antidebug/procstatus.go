package antidebug

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// tracerPidField is the /proc/<pid>/status field holding the pid of the
// process tracing this one, 0 when nothing is attached.
const tracerPidField = "TracerPid:"

var errNoTracerPid = errors.New("TracerPid field not found in status file")

// parseTracerPid extracts the TracerPid value from the contents of a
// /proc/<pid>/status file. A blob without the field, or with a value that is
// not an integer, is malformed and yields an error rather than 0: an
// unreadable tracer field must never pass for "no tracer".
func parseTracerPid(status []byte) (int, error) {
	scanner := bufio.NewScanner(bytes.NewReader(status))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, tracerPidField) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, fmt.Errorf("malformed TracerPid line %q", line)
		}
		pid, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, fmt.Errorf("malformed TracerPid value %q", fields[1])
		}
		return pid, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, errNoTracerPid
}
