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

package web

// GameDetailReq 获取商品详情
type GameDetailReq struct {
	Key string `json:"key"`
}

type GameDetailResp struct {
	Game Game `json:"game"`
}

// ListGamesReq 分页查询在售商品
type ListGamesReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListGamesResp struct {
	Total int64  `json:"total,omitempty"`
	Games []Game `json:"games,omitempty"`
}

type Game struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Platform    string `json:"platform"`
	Publisher   string `json:"publisher"`
	Price       int64  `json:"price"`
	Discount    *int64 `json:"discount,omitempty"`
	Stock       int64  `json:"stock"`
}

// CreateGameReq 创建商品, 管理端使用
type CreateGameReq struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Platform    string `json:"platform"`
	Publisher   string `json:"publisher"`
	Price       int64  `json:"price"`
	Discount    *int64 `json:"discount,omitempty"`
	Stock       int64  `json:"stock"`
}

type CreateGameResp struct {
	ID int64 `json:"id"`
}
