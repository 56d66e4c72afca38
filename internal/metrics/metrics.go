// Package metrics exposes application metrics collectors.
package metrics

import "github.com/goodnatureofminers/blockinsight7000-tracker/internal/tracker/model"

const namespace = "blockinsight7000"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func networkLabel(network model.Network) string {
	if network == "" {
		return "unknown"
	}
	return string(network)
}
