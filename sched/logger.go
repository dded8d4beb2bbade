package sched

import "github.com/osmocom-go/trxsched/internal/rflog"

/*-------------------------------------------------------------------
 *
 * Purpose:	Logging facade for the scheduler core.
 *
 * Description:	Thin wrapper over internal/rflog so call sites read
 *		errorf/fatalf and a nil logger silently discards.
 *
 *-------------------------------------------------------------------*/

type schedLogger struct {
	l *rflog.Logger
}

func newSchedLogger(l *rflog.Logger) *schedLogger {
	if l == nil {
		l = rflog.Discard()
	}
	return &schedLogger{l: l}
}

func (s *schedLogger) debugf(format string, args ...any) { s.l.Debug(format, args...) }
func (s *schedLogger) infof(format string, args ...any)  { s.l.Info(format, args...) }
func (s *schedLogger) errorf(format string, args ...any) { s.l.Error(format, args...) }
func (s *schedLogger) fatalf(format string, args ...any) { s.l.Fatal(format, args...) }
