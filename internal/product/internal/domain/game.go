// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

type GameStatus uint8

func (s GameStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusOffShelf GameStatus = 1
	StatusOnShelf  GameStatus = 2
)

type Game struct {
	ID int64
	// Key 商品别名, 形如 "halo-3", 对外暴露的唯一标识
	Key         string
	Name        string
	Description string
	Genre       string
	Platform    string
	Publisher   string
	// Price 单位为分, 999表示9.99元
	Price int64
	// Discount 折扣百分比, nil 表示无折扣
	Discount *int64
	Stock    int64
	Status   GameStatus
	Ctime    int64
	Utime    int64
}
