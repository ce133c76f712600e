package edgeio

import (
	"fmt"
	"os"
	"strconv"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// MarshalResult 组装一次计算的输出文档：
//
//	{
//	    "Action": "components",
//	    "ErrorCode": "0",
//	    "ErrorMsg": "",
//	    "N": 5,
//	    "Count": 2,
//	    "Components": [[0, 1, 2], [3, 4]]
//	}
//
// 标签输入会追加 Labels 和 ComponentsByLabel 两个字段
func MarshalResult(action string, el *EdgeList, groups [][]int) ([]byte, error) {
	doc := []byte(`{}`)
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, value)
	}

	set("Action", action)
	set("ErrorCode", strconv.Itoa(0))
	set("ErrorMsg", "")
	set("N", el.N)
	set("Count", len(groups))
	set("Components", groups)
	if el.Labels != nil {
		set("Labels", el.Labels)
		named := make([][]string, len(groups))
		for i, group := range groups {
			named[i] = make([]string, len(group))
			for j, v := range group {
				named[i][j] = el.Labels[v]
			}
		}
		set("ComponentsByLabel", named)
	}
	if err != nil {
		return nil, fmt.Errorf("组装结果 JSON 失败: %w", err)
	}
	return pretty.Pretty(doc), nil
}

// MarshalReach 组装可达性查询的输出文档，members 必须已经升序
func MarshalReach(el *EdgeList, start int, members []int) ([]byte, error) {
	doc := []byte(`{}`)
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, value)
	}

	set("Action", "reach")
	set("ErrorCode", strconv.Itoa(0))
	set("ErrorMsg", "")
	set("N", el.N)
	set("Start", start)
	set("Reachable", members)
	if el.Labels != nil {
		named := make([]string, len(members))
		for i, v := range members {
			named[i] = el.Labels[v]
		}
		set("StartLabel", el.Labels[start])
		set("ReachableByLabel", named)
	}
	if err != nil {
		return nil, fmt.Errorf("组装结果 JSON 失败: %w", err)
	}
	return pretty.Pretty(doc), nil
}

// MarshalError 组装失败时的输出文档，结构和成功时对齐
func MarshalError(action string, code int, msg string) []byte {
	doc := []byte(`{}`)
	doc, _ = sjson.SetBytes(doc, "Action", action)
	doc, _ = sjson.SetBytes(doc, "ErrorCode", strconv.Itoa(code))
	doc, _ = sjson.SetBytes(doc, "ErrorMsg", msg)
	return pretty.Pretty(doc)
}

// WriteResultFile 把结果文档写到 path，文件已存在时整体覆盖
func WriteResultFile(path string, doc []byte) error {
	if err := os.WriteFile(path, doc, 0644); err != nil {
		return fmt.Errorf("写结果文件失败: %w", err)
	}
	return nil
}
