// compileinfoprint is imported for the side effect of printing the compileinfo
// to os.Stderr when a command starts.
package compileinfoprint

import "github.com/carbocation/kinshipmap/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
