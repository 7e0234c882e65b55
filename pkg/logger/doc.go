// Package logger builds the *slog.Logger used across sheetverify and provides
// attribute helpers that keep key names consistent between packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("sheetverify")),
//	)
//	log.Warn("malformed rule pattern", logger.Pattern(p), logger.Error(err))
//
// Components that accept a logger default to Discard, so library users get
// no output unless they opt in.
package logger
