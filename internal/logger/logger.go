package logger

import "go.uber.org/zap"

// Init installs the process-global logger consumed via zap.L().
func Init(mode string) error {
	var (
		l   *zap.Logger
		err error
	)

	if mode == "release" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(l)

	return nil
}
