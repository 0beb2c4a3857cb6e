package efsm_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEfsmSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "efsm scenarios suite")
}
