package os

import (
	"bytes"
	"io/ioutil"

	"github.com/pinpt/go-filterset/fileutil"
)

const (
	dockerCGroup   = "/proc/self/cgroup"
	k8sServiceAcct = "/var/run/secrets/kubernetes.io/serviceaccount"
)

// IsInsideContainer returns true if the process is running inside a containerized environment like docker or kubernetes
func IsInsideContainer() bool {
	if fileutil.FileExists(k8sServiceAcct) {
		return true
	}
	if fileutil.FileExists(dockerCGroup) {
		buf, _ := ioutil.ReadFile(dockerCGroup)
		// check either native docker or docker inside k8s
		if bytes.Contains(buf, []byte("docker")) || bytes.Contains(buf, []byte("kubepods")) {
			return true
		}
	}
	return false
}
