// Package validator adapts go-playground/validator for gin binding
// Package validator 为 gin 绑定适配 go-playground/validator
package validator

import (
	"reflect"
	"sync"

	validatorV10 "github.com/go-playground/validator/v10"
)

// CustomValidator implements gin binding.StructValidator
// CustomValidator 实现 gin binding.StructValidator
type CustomValidator struct {
	once     sync.Once
	validate *validatorV10.Validate
}

// NewCustomValidator 创建 CustomValidator 实例
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{}
}

// ValidateStruct 校验结构体
func (v *CustomValidator) ValidateStruct(obj interface{}) error {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}
	v.lazyinit()
	return v.validate.Struct(obj)
}

// Engine 返回底层 validator 引擎
func (v *CustomValidator) Engine() interface{} {
	v.lazyinit()
	return v.validate
}

func (v *CustomValidator) lazyinit() {
	v.once.Do(func() {
		v.validate = validatorV10.New()
		v.validate.SetTagName("binding")
	})
}

// RegisterCustom registers project-specific validation rules
// RegisterCustom 注册项目自定义校验规则
func RegisterCustom() {
	// 目前的请求结构体只用到内建规则，预留注册入口
}
