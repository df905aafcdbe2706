package global

import (
	"github.com/haierkeys/fast-file-share-service/pkg/fileurl"
)

var (
	// 程序执行目录
	ROOT string
	Name string = "Fast File Share Service"
)

func init() {

	filename := fileurl.GetExePath()
	ROOT = filename + "/"

}
