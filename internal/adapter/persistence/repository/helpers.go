package repository

import (
	"errors"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intToString(v int) string {
	return strconv.Itoa(v)
}

// isConditionalCheckFailed reports a failed condition expression on a
// single-item write; repositories translate it to the zero-value/nil-error
// "not applicable" convention.
func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}
