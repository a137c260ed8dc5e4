package xmgid

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// 编译时接口检查
var (
	_ encoding.TextMarshaler     = ID{}
	_ encoding.TextUnmarshaler   = (*ID)(nil)
	_ encoding.BinaryMarshaler   = ID{}
	_ encoding.BinaryUnmarshaler = (*ID)(nil)
	_ driver.Valuer              = ID{}
	_ sql.Scanner                = (*ID)(nil)
)

// MarshalText 实现 encoding.TextMarshaler，输出规范小写十六进制。
// JSON 序列化因此得到字符串形式。
func (id ID) MarshalText() ([]byte, error) {
	return id.AppendHex(make([]byte, 0, TextLen)), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler。
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseBytes(text)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary 实现 encoding.BinaryMarshaler，输出线格式。
func (id ID) MarshalBinary() ([]byte, error) {
	return id.WireBytes(), nil
}

// UnmarshalBinary 实现 encoding.BinaryUnmarshaler，要求恰好 Len 字节。
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value 实现 driver.Valuer，以列字面量（十六进制文本）写入数据库。
func (id ID) Value() (driver.Value, error) {
	return id.String(), nil
}

// Scan 实现 sql.Scanner。
//
// 支持十六进制 string、24 字节十六进制 []byte 和 12 字节原始 []byte。
// NULL 扫描为 [Nil]。
func (id *ID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = Nil
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == Len {
			return id.UnmarshalBinary(v)
		}
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("xmgid: cannot scan %T into mgid", src)
	}
}

// =============================================================================
// MongoDB ObjectID 互转
// =============================================================================

// FromObjectID 将 bson.ObjectID 转换为 ID，两者字节布局一致。
func FromObjectID(oid bson.ObjectID) ID {
	return ID(oid)
}

// ObjectID 返回相同字节的 bson.ObjectID。
func (id ID) ObjectID() bson.ObjectID {
	return bson.ObjectID(id)
}
