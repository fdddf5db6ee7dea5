package render

// maxShaderLights precisa bater com o tamanho dos arrays no fragment shader.
const maxShaderLights = 16

const voxelVertexShader = `
#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
in mat4 instanceTransform;

uniform mat4 mvp;

out vec3 fragNormal;
out vec3 fragWorldPos;

void main() {
    vec4 world = instanceTransform * vec4(vertexPosition, 1.0);
    fragWorldPos = world.xyz;
    fragNormal = normalize(mat3(instanceTransform) * vertexNormal);
    gl_Position = mvp * world;
}
`

// viewMode: 0 saída iluminada, 1 difusa, 2 normal, 3 profundidade.
// Nos modos 1 e 2 a cor já vem pronta em colDiffuse; no modo 3 colDiffuse.r
// carrega a força de profundidade.
const voxelFragmentShader = `
#version 330
in vec3 fragNormal;
in vec3 fragWorldPos;

uniform vec4 colDiffuse;
uniform float viewMode;
uniform vec3 sunDir;
uniform float lightCount;
uniform vec3 lightPos[16];
uniform vec3 lightColor[16];

out vec4 finalColor;

void main() {
    if (viewMode > 2.5) {
        float d = (1.0 - gl_FragCoord.z) * colDiffuse.r;
        finalColor = vec4(vec3(d), 1.0);
        return;
    }
    if (viewMode > 0.5) {
        finalColor = colDiffuse;
        return;
    }

    vec3 n = normalize(fragNormal);
    vec3 light = vec3(0.35) + vec3(0.65) * max(dot(n, normalize(sunDir)), 0.0);

    int count = int(lightCount);
    for (int i = 0; i < 16; i++) {
        if (i >= count) break;
        vec3 toLight = lightPos[i] - fragWorldPos;
        float dist = length(toLight);
        float atten = 1.0 / (1.0 + 0.02 * dist * dist);
        light += lightColor[i] * atten * max(dot(n, toLight / max(dist, 0.001)), 0.0);
    }

    finalColor = vec4(colDiffuse.rgb * light, colDiffuse.a);
}
`
